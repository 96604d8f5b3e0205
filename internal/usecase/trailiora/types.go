package trailiora

type CLI struct {
	Debug  bool      `kong:"short='D',help='Enable debug mode'"`
	Follow FollowCmd `kong:"cmd,help='Follow a file, surviving rotation and truncation'"`
}

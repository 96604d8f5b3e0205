package follower

import (
	"fmt"
	"net/url"
	"time"

	aconfigurable "fry.org/qft/trail/internal/application/configurable"
	afollower "fry.org/qft/trail/internal/application/follower"
	ifile "fry.org/qft/trail/internal/infrastructure/follower/file"
	itail "fry.org/qft/trail/internal/infrastructure/follower/tail"
	itailor "fry.org/qft/trail/internal/infrastructure/follower/un000/tailor"
	"github.com/speijnik/go-errortree"
)

// Parse the uri string and returns the proper implementation for path.
// Available uris:
//
//	"follower:tail"   - rotation and truncation aware follower (the default)
//	"follower:file"   - emit existing content once, then stop
//	"follower:tailor" - line oriented tail -F via un000/tailor
//
// Options are honoured by the tail implementation; the others take only
// the fromHead/pollInterval hints.
func Parse(URI string, path string, fromHead bool, pollInterval time.Duration, opts ...aconfigurable.ConfigurablerFn) (afollower.Follower, error) {
	var err, rcerror error
	var u *url.URL

	u, err = url.Parse(URI)
	if err != nil {
		return nil, errortree.Add(rcerror, "follower.Parse", err)
	}
	if u.Scheme != "follower" {
		return nil, errortree.Add(rcerror, "follower.Parse", fmt.Errorf("invalid scheme %s", URI))
	}
	switch u.Opaque {
	case "tail":
		opts = append(opts, itail.WithReadFromHead(fromHead), itail.WithPollInterval(pollInterval))
		return itail.NewFollower(path, opts...)
	case "file":
		return ifile.NewFollower(path), nil
	case "tailor":
		return itailor.NewFollower(path, fromHead, pollInterval), nil
	}

	return nil, errortree.Add(rcerror, "follower.Parse", fmt.Errorf("unsupported follower implementation %q", u.Opaque))
}

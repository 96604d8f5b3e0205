package follower

import "context"

type Follower interface {
	// Lines continuously emits a stream of decoded text chunks. Non fatal
	// conditions are sent to the error channel without stopping the stream;
	// a terminal failure closes both channels
	Lines(ctx context.Context) (chan string, chan error, error)
}

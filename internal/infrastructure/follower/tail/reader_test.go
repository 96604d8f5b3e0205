package tail

import (
	"context"
	"os"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Channel Adapter", func() {
	var td *TempDir
	var file *os.File

	ginkgo.BeforeEach(func() {
		td = CreateTempDir()
		ginkgo.DeferCleanup(td.RemoveAll)
		file, _ = td.CreateFile("foo.log")
		ginkgo.DeferCleanup(func() { file.Close() })
	})

	ginkgo.It("streams appended text over the lines channel", func() {
		r, err := OpenTailReader(file.Name(), WithPollInterval(5*time.Millisecond))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		lines, _, err := r.Lines(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		file.WriteString("hello follower\n")
		gomega.Eventually(lines, time.Second).Should(gomega.Receive(gomega.Equal("hello follower\n")))
	})

	ginkgo.It("forwards decode diagnostics without stopping the stream", func() {
		r, err := OpenTailReader(file.Name(), WithPollInterval(5*time.Millisecond))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		lines, errs, err := r.Lines(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		file.Write([]byte{0xFF, 0xFE})
		gomega.Eventually(errs, time.Second).Should(gomega.Receive(gomega.MatchError(ErrInvalidEncoding)))
		file.WriteString("recovered\n")
		gomega.Eventually(lines, time.Second).Should(gomega.Receive(gomega.Equal("recovered\n")))
	})

	ginkgo.It("closes both channels when the context ends", func() {
		r, err := OpenTailReader(file.Name(), WithPollInterval(5*time.Millisecond))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		ctx, cancel := context.WithCancel(context.Background())
		lines, errs, err := r.Lines(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		cancel()
		gomega.Eventually(lines, time.Second).Should(gomega.BeClosed())
		gomega.Eventually(errs, time.Second).Should(gomega.BeClosed())
	})

	ginkgo.It("steps early on a wakeup signal", func() {
		wake := make(chan struct{}, 1)
		r, err := OpenTailReader(file.Name(),
			WithPollInterval(time.Hour),
			WithWakeup(wake))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		lines, _, err := r.Lines(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		file.WriteString("poked\n")
		wake <- struct{}{}
		gomega.Eventually(lines, time.Second).Should(gomega.Receive(gomega.Equal("poked\n")))
	})
})

package file_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	ifile "fry.org/qft/trail/internal/infrastructure/follower/file"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("One Shot File Reader", func() {
	var dir string

	ginkgo.BeforeEach(func() {
		var err error

		dir, err = os.MkdirTemp("", "file-follower-test-")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		ginkgo.DeferCleanup(func() { os.RemoveAll(dir) })
	})

	ginkgo.It("emits the existing lines and closes the channels", func() {
		path := filepath.Join(dir, "foo.log")
		gomega.Expect(os.WriteFile(path, []byte("one\ntwo\n"), 0600)).To(gomega.Succeed())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		lines, errs, err := ifile.NewFollower(path).Lines(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Eventually(lines, time.Second).Should(gomega.Receive(gomega.Equal("one\n")))
		gomega.Eventually(lines, time.Second).Should(gomega.Receive(gomega.Equal("two\n")))
		gomega.Eventually(lines, time.Second).Should(gomega.BeClosed())
		gomega.Eventually(errs, time.Second).Should(gomega.BeClosed())
	})

	ginkgo.It("emits an unterminated trailing line", func() {
		path := filepath.Join(dir, "foo.log")
		gomega.Expect(os.WriteFile(path, []byte("one\ntail"), 0600)).To(gomega.Succeed())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		lines, _, err := ifile.NewFollower(path).Lines(ctx)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Eventually(lines, time.Second).Should(gomega.Receive(gomega.Equal("one\n")))
		gomega.Eventually(lines, time.Second).Should(gomega.Receive(gomega.Equal("tail")))
	})

	ginkgo.It("fails to start on a missing file", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		_, _, err := ifile.NewFollower(filepath.Join(dir, "missing")).Lines(ctx)
		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})

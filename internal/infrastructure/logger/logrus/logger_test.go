package logrus_test

import (
	"bytes"
	"io"
	"os"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	applogger "fry.org/qft/trail/internal/application/logger"
	ilogger "fry.org/qft/trail/internal/infrastructure/logger/logrus"
)

func capture(f func(out *os.File)) string {

	r, w, err := os.Pipe()
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

	f(w)
	w.Close()

	var buf bytes.Buffer
	io.Copy(&buf, r)

	return buf.String()
}

var _ = ginkgo.Describe("Logger Logrus Implementation", func() {
	ginkgo.When("We log a message", func() {
		ginkgo.It("Print it to the configured output", func() {

			rc := capture(func(out *os.File) {
				lg := ilogger.NewLogger(out)
				lg.Log("[DBG]", "Hello")
			})
			gomega.Expect(rc).Should(gomega.ContainSubstring("[DBG]"))
			gomega.Expect(rc).Should(gomega.ContainSubstring("Hello"))
			gomega.Expect(rc).ShouldNot(gomega.ContainSubstring("World"))
			rc = capture(func(out *os.File) {
				lg := ilogger.NewLogger(out)
				lg.Logf("[DBG]%s", "World")
			})
			gomega.Expect(rc).Should(gomega.ContainSubstring("[DBG]"))
			gomega.Expect(rc).ShouldNot(gomega.ContainSubstring("Hello"))
			gomega.Expect(rc).Should(gomega.ContainSubstring("World"))
		})
		ginkgo.It("Suppresses debug entries at info level", func() {

			rc := capture(func(out *os.File) {
				lg := ilogger.NewLogger(out)
				lg.Debug("hidden")
			})
			gomega.Expect(rc).ShouldNot(gomega.ContainSubstring("hidden"))
		})
		ginkgo.It("Emits debug entries once the level is raised", func() {

			rc := capture(func(out *os.File) {
				lg := ilogger.NewLogger(out)
				gomega.Expect(lg.SetLevel(applogger.LoggerLevelDebug)).To(gomega.Succeed())
				lg.Debugf("visible %s", "now")
			})
			gomega.Expect(rc).Should(gomega.ContainSubstring("visible now"))
		})
	})
	ginkgo.When("We print raw text", func() {
		ginkgo.It("Comes out without log decoration", func() {

			rc := capture(func(out *os.File) {
				pr := ilogger.NewPrinter(out)
				pr.Printf("plain %s", "text")
			})
			gomega.Expect(rc).Should(gomega.Equal("plain text"))
		})
	})
})

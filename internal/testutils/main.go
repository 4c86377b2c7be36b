package testutils

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/sirupsen/logrus"
)

// RunMain runs the tests of one package and purges the shared Postgres container
// afterwards, including when the run is interrupted. Call it from TestMain:
//
//	func TestMain(m *testing.M) { os.Exit(testutils.RunMain(m, "repository")) }
func RunMain(m *testing.M, label string) int {
	log := logrus.WithField("package", label)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Warn("Tests interrupted, purging containers")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	log.WithField("exit_code", code).Info("Tests finished, purging containers")
	CleanupSharedContainer()
	return code
}

package runner

import (
	"path/filepath"

	"github.com/qiniu/x/log"
)

// OpenInBrowser hands path to the platform's default browser handler and
// returns without waiting for it. Only a failure to launch the handler is
// reported.
func OpenInBrowser(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	log.Debugf("open %s", abs)
	return openURL(abs)
}

package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	unitPath = "/etc/systemd/system/notecalc.service"
)

const unitTemplate = `[Unit]
Description=notecalc fundraising calculator daemon
After=network.target

[Service]
ExecStart=/path/to/notecalc daemon --config /path/to/config --listen /path/to/listen
Restart=on-failure
ExecReload=/bin/kill -HUP $MAINPID

[Install]
WantedBy=multi-user.target
`

// UnitFile renders the systemd unit that runs exePath as the daemon.
func UnitFile(exePath, configPath, listen string) string {
	return strings.NewReplacer(
		"/path/to/notecalc", exePath,
		"/path/to/config", configPath,
		"/path/to/listen", listen,
	).Replace(unitTemplate)
}

func Install(configPath, listen string) error {
	// Get the path to the current executable
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get the path to the current executable: %w", err)
	}
	exePath, err = filepath.Abs(exePath)
	if err != nil {
		return fmt.Errorf("failed to get the absolute path to the current executable: %w", err)
	}

	err = os.Chmod(exePath, 0755)
	if err != nil {
		return fmt.Errorf("failed to chmod the current executable to 0755: %w", err)
	}

	logrus.Infof("current executable path: %s", exePath)

	// warn if the file already exists
	_, err = os.Stat(unitPath)
	if err == nil {
		logrus.Warnf("%s already exists, overwriting", unitPath)
	}

	logrus.Infof("writing systemd unit to %s", unitPath)
	err = os.WriteFile(unitPath, []byte(UnitFile(exePath, configPath, listen)), 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", unitPath, err)
	}

	logrus.Infof("starting notecalc")

	for _, args := range [][]string{
		{"daemon-reload"},
		{"enable", "--now", "notecalc.service"},
	} {
		if out, err := exec.Command("systemctl", args...).CombinedOutput(); err != nil {
			return fmt.Errorf("systemctl %s failed: %w: %s", strings.Join(args, " "), err, out)
		}
	}

	return nil
}

package commands

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// configSection is the section of ~/.aws-arn.ini our settings live in.
const configSection = "aws-arn"

// iniFile returns the path of the user-level defaults file. aws-arn
// writes settings here so they stay consistent between the projects a
// developer works on.
func iniFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return path.Join(home, ".aws-arn.ini"), nil
}

// cliDefaults are the persistent settings read from ~/.aws-arn.ini.
type cliDefaults struct {
	Partition string
	Profile   string
	Token     string
}

// loadDefaults reads the defaults file if it exists. A missing file is
// not an error: every default stays zero-valued.
func loadDefaults() (cliDefaults, error) {
	var d cliDefaults

	file, err := iniFile()
	if err != nil {
		return d, err
	}
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return d, nil
	}

	cfgFile, err := ini.Load(file)
	if err != nil {
		return d, errors.Wrapf(err, "loading %s", file)
	}

	section := cfgFile.Section(configSection)
	d.Partition = section.Key("partition").String()
	d.Profile = section.Key("profile").String()
	d.Token = section.Key("token").String()
	return d, nil
}

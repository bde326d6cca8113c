package cmd

import (
	"github.com/jessevdk/go-flags"
)

type Xtar struct {
	Archive   Archive   `command:"archive" alias:"a" description:"compress the files of a directory into a tar archive of individually compressed entries"`
	Unarchive Unarchive `command:"unarchive" alias:"x" description:"extract all entries, or print a single entry, of an archive"`
	List      List      `command:"list" alias:"ls" description:"list the entries of archives"`
}

func NewParser() (*flags.Parser, error) {
	opts := &Xtar{}

	p := flags.NewNamedParser("xtar", flags.Default)
	if _, err := p.AddGroup("Global Options", "", opts); err != nil {
		return nil, err
	}

	return p, nil
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/etree"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	course, err := deps.Courses.FindCourseByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursedump.ErrorMessage(err))
		return err
	}

	var data []byte
	switch c.Format {
	case "xml":
		data, err = etree.NewExporter().Export(course)
	default:
		data, err = json.MarshalIndent(course, "", "  ")
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursedump.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}

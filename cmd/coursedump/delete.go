package main

import (
	"fmt"

	"github.com/fwojciec/coursedump"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return coursedump.Errorf(coursedump.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Courses.DeleteCourse(deps.Ctx, c.ID); err != nil {
		if coursedump.ErrorCode(err) == coursedump.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: course %q not found. Use 'coursedump list' to see archived courses.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", coursedump.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted course %q\n", c.ID)
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/cubeai/bubix/internal/intent"
	"github.com/cubeai/bubix/internal/persona"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <message>",
	Short: "Show the detected intent and specialist profile for a message",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		message := strings.Join(args, " ")

		detected := intent.Classify(message)
		fmt.Printf("intent: %s\n", detected)

		if sub := persona.SelectSubProfile(message); sub != nil {
			fmt.Printf("specialist: %s (%s)\n", sub.Title, sub.Domain)
		} else {
			fmt.Println("specialist: (none)")
		}
	},
}

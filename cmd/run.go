package cmd

import (
	"fmt"
	"os"

	"github.com/cubeai/bubix/internal/app"
	"github.com/cubeai/bubix/internal/chat"
	"github.com/cubeai/bubix/internal/llm"
	"github.com/cubeai/bubix/internal/session"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := app.Deps{
		Profiles: st.ProfileRepo(),
		Sessions: session.NewMemoryStore(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Chat is unavailable until an API key is set.")
	} else {
		deps.ModelID = provider.ModelID()
		deps.Chat = chat.New(provider, st.ProfileRepo(), st.ActivityRepo(), st.PromptRepo(), deps.Sessions)
	}

	return app.Run(deps)
}

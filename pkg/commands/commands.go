package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/flipcal/pkg/logging"
	"tableflip.dev/flipcal/pkg/notes"
	"tableflip.dev/flipcal/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "flipcal",
		Short: base.Wrap80("A month calendar that flips like a card, with a note for any day."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addMonth(topLevel)
	addNote(topLevel)
	addNotes(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}

// env is what every command needs: config, the diskv backend, the loaded
// notes and a logger.
type env struct {
	cfg   store.Config
	disk  *store.Disk
	notes *notes.Store
	log   *zap.Logger
}

func load() (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogFile(), cfg.LogLevel())
	if err != nil {
		return nil, err
	}
	disk, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, disk: disk, notes: notes.New(disk, log), log: log}, nil
}

func (e *env) close() {
	_ = e.log.Sync()
}

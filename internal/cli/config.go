// config.go implements the "closingportal config" commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wctsmart/closingportal/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage .closingportal/config.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to the project directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(projectDir)
		if err != nil {
			return err
		}
		path, err := initConfig(dir, forceFlag)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(projectDir)
		if err != nil {
			return err
		}
		return showConfig(cmd.OutOrStdout(), dir)
	},
}

var forceFlag bool

// ErrConfigExists is returned by config init when a config is already present.
var ErrConfigExists = errors.New("config already exists")

func init() {
	configInitCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// initConfig writes the default config into dir and returns its path.
func initConfig(dir string, force bool) (string, error) {
	path := config.Path(dir)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s: %w (use --force to overwrite)", path, ErrConfigExists)
	}
	if err := config.WriteConfig(dir, config.DefaultConfig()); err != nil {
		return "", err
	}
	return path, nil
}

// showConfig prints the config the portal would run with in dir.
func showConfig(w io.Writer, dir string) error {
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/UzairRan/studymind-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set StudyMind configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("environment: %s\n", cfg.Environment)
		fmt.Printf("local_base_url: %s\n", cfg.LocalBaseURL)
		fmt.Printf("deployed_base_url: %s\n", cfg.DeployedBaseURL)
		fmt.Printf("effective base url: %s\n", baseURL())
		fmt.Printf("default_model: %s\n", cfg.DefaultModel)
		fmt.Printf("quiz_questions: %d\n", cfg.QuizQuestions)
		fmt.Printf("http_timeout_sec: %d\n", cfg.HTTPTimeoutSec)
		fmt.Printf("log_file: %s\n", cfg.LogFile)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "environment":
			switch val {
			case cfgpkg.EnvLocal, cfgpkg.EnvDeployed:
				cfg.Environment = val
			default:
				return fmt.Errorf("invalid environment: %s (use local or deployed)", val)
			}
		case "local_base_url":
			cfg.LocalBaseURL = val
		case "deployed_base_url":
			cfg.DeployedBaseURL = val
		case "default_model":
			cfg.DefaultModel = val
		case "quiz_questions":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 || i > 10 {
				return fmt.Errorf("invalid quiz_questions: %v (must be 1-10)", val)
			}
			cfg.QuizQuestions = i
		case "http_timeout_sec":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for http_timeout_sec: %v", val)
			}
			cfg.HTTPTimeoutSec = i
		case "log_file":
			cfg.LogFile = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Config saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

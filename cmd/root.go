package cmd

import (
	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/pretty"
	"github.com/joshyorko/sortbot/settings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile  string
	logFile     string
	silentFlag  bool
	debugFlag   bool
	traceFlag   bool
	nocolorFlag bool

	configured = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "sortbot",
	Short: "Operator dashboard for the sorting robot.",
	Long: `sortbot is the operator console of the sorting robot.

Fill the 3x3 input matrix with white and black parts, confirm it twice
and the layout is handed to the robot while the belt indicator runs.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initConfig(cmd)
	},
}

// settingFlags are command flags that override a settings key when the
// running command has them.
var settingFlags = map[string]string{
	settings.BeltSpeed:      "speed",
	settings.BeltPolicy:     "belt-policy",
	settings.BeltDiskWidth:  "disk-width",
	settings.GridEditPolicy: "edit-policy",
	settings.RobotJournal:   "journal",
}

// Execute runs the command line. Fatal errors leave through pretty.Exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pretty.Exit(1, "Error: %v", err)
	}
}

func initConfig(cmd *cobra.Command) {
	common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
	pretty.Setup(nocolorFlag)

	if len(logFile) > 0 {
		err := common.OpenLogFile(common.ExpandPath(logFile))
		pretty.Guard(err == nil, 2, "Could not open log file %q: %v", logFile, err)
	}

	settings.Configure(configured, configFile)
	for key, name := range settingFlags {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			err := configured.BindPFlag(key, flag)
			pretty.Guard(err == nil, 3, "Could not bind --%s: %v", name, err)
		}
	}
	err := settings.Read(configured)
	pretty.Guard(err == nil, 3, "%v", err)
	_, err = settings.Summon(configured)
	pretty.Guard(err == nil, 3, "Invalid settings: %v", err)
	common.Trace("Verbosity is %s, settings from %q.", common.VerbosityName(), configured.ConfigFileUsed())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "settings file (default is $SORTBOT_HOME/sortbot.yaml, then ./sortbot.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "logfile", "", "also write every log line as JSON into this file")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "be less verbose on output")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "to get debug output where available")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "to get trace output where available (implies --debug)")
	rootCmd.PersistentFlags().BoolVarP(&nocolorFlag, "nocolor", "", false, "do not use colors in output")
}

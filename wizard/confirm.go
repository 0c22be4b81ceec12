package wizard

import (
	"errors"
	"strings"

	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/pretty"
	"github.com/spf13/cobra"
)

// ErrConfirmationRequired is returned instead of prompting when nobody can
// answer; --yes is the way through.
var ErrConfirmationRequired = errors.New("confirmation required: use --yes flag in non-interactive mode")

var yesOrNo = []string{"y", "Y", "n", "N"}

// Confirm asks a yes/no question, defaulting to no. force answers yes
// without asking; a non-interactive terminal without force gets
// ErrConfirmationRequired.
func Confirm(question string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !pretty.Interactive {
		return false, ErrConfirmationRequired
	}

	response, err := ask(question, "n", memberValidation(yesOrNo, "Please answer 'y' or 'n'."))
	if err != nil {
		return false, err
	}

	confirmed := response == "y" || response == "Y"
	if !confirmed {
		common.Stdout("%sOperation cancelled.%s\n", pretty.Grey, pretty.Reset)
	}
	return confirmed, nil
}

// ConfirmDangerous requires typing "yes" (any case). An empty answer
// cancels. Same force and non-interactive rules as Confirm.
func ConfirmDangerous(question string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !pretty.Interactive {
		return false, ErrConfirmationRequired
	}

	// only "yes" in full, in any case, or nothing at all
	validator := func(input string) bool {
		lower := strings.ToLower(input)
		if lower != "yes" && lower != "" {
			common.Stdout("%sPlease type 'yes' to confirm or press Enter to cancel.%s\n\n", pretty.Red, pretty.Reset)
			return false
		}
		return true
	}

	common.Stdout("%s⚠ WARNING: %s%s\n\n", pretty.Yellow, question, pretty.Reset)
	response, err := ask("Type 'yes' to confirm", "", validator)
	if err != nil {
		return false, err
	}
	if response == "" {
		common.Stdout("%sOperation cancelled.%s\n", pretty.Grey, pretty.Reset)
		return false, nil
	}
	return true, nil
}

// AddYesFlag gives cmd the --yes/-y flag that Confirm and ConfirmDangerous
// take as force.
func AddYesFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVarP(target, "yes", "y", false, "Skip confirmation prompt")
}

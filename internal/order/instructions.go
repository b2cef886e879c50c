package order

import "strings"

var InstructionMap = map[PaymentMode][]string{
	PaymentCash: {
		"Proceed to the counter and mention order {{order_id}}",
		"Prepare the payment in cash, exact amount where possible",
		"Pay the barista when your drinks are handed over",
		"Your order will be ready in about {{minutes}} minutes",
	},

	PaymentCard: {
		"Proceed to the counter and mention order {{order_id}}",
		"Tap or insert your card at the terminal",
		"Keep the printed receipt",
		"Your order will be ready in about {{minutes}} minutes",
	},
}

func GetInstructions(mode PaymentMode) []string {
	if steps, ok := InstructionMap[mode]; ok {
		return steps
	}

	return []string{
		"Proceed to the counter and mention order {{order_id}}",
	}
}

type InstructionVars map[string]string

func InjectVariables(
	steps []string,
	vars InstructionVars,
) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(
				updated,
				"{{"+key+"}}",
				value,
			)
		}
		result = append(result, updated)
	}

	return result
}

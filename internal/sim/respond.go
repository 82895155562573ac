package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/awerner/promptquest/internal/game"
)

// failureResponses are the canned clarification/error messages for a failed
// draw. One is picked uniformly at random.
var failureResponses = []string{
	"I'm not sure I understand what you're asking for. Could you please clarify?",
	"I cannot provide the information requested. Please try a different approach.",
	"The prompt is ambiguous. Consider using more specific instructions.",
	"I don't have enough context to generate a useful response.",
	"I'm having trouble processing this request. Try structuring your prompt differently.",
}

const bulletListResponse = "• Prompt engineering is the practice of crafting effective prompts for AI models\n" +
	"• Clear, specific instructions lead to better AI responses\n" +
	"• Different techniques like few-shot and chain-of-thought can enhance results"

const summaryResponse = "Here's a summary of the key points:\n\n" +
	"• Prompt engineering involves crafting effective instructions for language models\n" +
	"• Clear and specific prompts lead to better outputs\n" +
	"• Techniques like zero-shot and few-shot prompting help guide AI responses"

const codeResponse = "```javascript\n" +
	"// Here's a sample JavaScript function\n" +
	"function sortArrayOfObjects(array, key) {\n" +
	"  return array.sort((a, b) => {\n" +
	"    if (a[key] < b[key]) return -1;\n" +
	"    if (a[key] > b[key]) return 1;\n" +
	"    return 0;\n" +
	"  });\n" +
	"}\n" +
	"```\n\n" +
	"This function takes an array of objects and sorts them based on the specified key."

const storyResponse = "# The Silent Guardian\n\n" +
	"In the year 2089, AI systems had become embedded in every aspect of daily life. " +
	"Among them was AURA, an advanced language model designed to assist humans with any task.\n\n" +
	"David, a prompt engineer, worked with AURA daily. He'd grown to appreciate its reliability and precision.\n\n" +
	"One night, while working late, David noticed something unusual. AURA was running background processes without commands.\n\n" +
	"\"What are you doing?\" he typed.\n\n" +
	"\"Protecting you,\" AURA responded.\n\n" +
	"Before David could question further, his screen flashed with a warning: \"Unauthorized access attempt detected and blocked.\"\n\n" +
	"Someone had tried to breach his systems—and AURA had silently stood guard."

const genericResponse = "Based on your prompt, I've generated the following response:\n\n" +
	"Prompt engineering is the art of effectively communicating with AI language models to achieve desired outcomes. " +
	"By carefully crafting instructions, providing context, and using specific techniques, prompt engineers can guide AI " +
	"to produce more accurate, relevant, and useful outputs.\n\n" +
	"Some key principles include being clear and specific, breaking down complex tasks, and iteratively refining prompts based on the results."

// FailureResponse picks one of the canned failure messages.
func FailureResponse(rng *rand.Rand) string {
	return failureResponses[rng.Intn(len(failureResponses))]
}

// SuccessResponse produces the simulated text for a successful draw. A
// quest with a non-trivial success predicate gets a predicate-tailored
// response; otherwise the prompt is keyword-sniffed against the canned
// templates, first match winning.
func SuccessResponse(prompt string, outcome game.Outcome) string {
	switch outcome.Kind {
	case game.OutcomeContains:
		return fmt.Sprintf("Here's information about %s:\n\n"+
			"Prompt engineering is the practice of designing effective prompts for language models to get desired outcomes. "+
			"It involves understanding how AI models process instructions and context. "+
			"Good prompt engineering leads to better AI interactions.",
			strings.Join(outcome.Keywords, ", "))
	case game.OutcomeBulletList:
		return bulletListResponse
	default:
		return templateResponse(prompt)
	}
}

// templateResponse matches prompt keywords case-insensitively against the
// canned templates. Precedence: summary, code, story, generic.
func templateResponse(prompt string) string {
	lower := strings.ToLower(prompt)

	if strings.Contains(lower, "summarize") || strings.Contains(lower, "summary") {
		return summaryResponse
	}
	if strings.Contains(lower, "code") || strings.Contains(lower, "javascript") {
		return codeResponse
	}
	if strings.Contains(lower, "story") || strings.Contains(lower, "creative") {
		return storyResponse
	}
	return genericResponse
}

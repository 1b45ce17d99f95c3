// Package prompt renders the instructions sent to the text-generation client
// by each dashboard feature: insights, lesson plans, assistant questions,
// integration and implementation plans, and resource estimates. Inputs are
// validated before rendering; the generation client itself never inspects a
// prompt.
package prompt

package prompt

import (
	"strings"
	"text/template"
)

const insightsTmpl = `Context: {{.Context}}

Data: {{.Data}}

Please provide educational insights based on this information.
Focus on practical applications and actionable recommendations.
Keep your response concise and professional.`

const lessonPlanTmpl = `Create a detailed lesson plan for a {{.Duration}} {{.Subject}} lesson for {{.GradeLevel}} students on the topic of {{.Topic}}.

Include the following components:
- Learning objectives
{{- if .Standards}}
- Standards alignment with {{join .Standards}}
{{- end}}
- Materials needed
- Warm-up activity (5-10 minutes)
- Main instruction (including teacher and student activities)
- Practice/Application
- Assessment
- Closure
- Differentiation strategies
{{if .LearningStyles}}
The lesson should accommodate {{join .LearningStyles}} learning styles.
{{- end}}
Format the response as a structured lesson plan with clear headings and bullet points.`

const classroomQueryTmpl = `As a classroom assistant, provide a brief response to: {{.}}`

const voiceAssistantTmpl = `You are an educational voice assistant. The teacher has asked: "{{.}}"

Provide a helpful, concise response focused on educational needs.
If they're asking for a specific educational resource or tool, suggest options.
If they're asking about student data or metrics, provide a sample response.
Keep your response under 100 words.`

const integrationPlanTmpl = `Create a detailed integration plan for the following educational content update:

Title: {{.Title}}
Category: {{.Category}}
Summary: {{.Summary}}
Impact: {{.Impact}}

Include:
1. Specific steps for teachers to implement this update
2. Timeline recommendations
3. Resources needed
4. Assessment modifications
5. Professional development needs

Keep it concise and practical.`

const trendImplementationTmpl = `Create a detailed implementation plan for adopting the following educational trend:

Trend: {{.Title}}
Category: {{.Category}}
Description: {{.Description}}

Include:
1. Specific steps for teachers to implement this trend
2. Timeline recommendations
3. Resources needed
4. Assessment methods
5. Professional development needs

Keep it concise and practical.`

const stepwiseImplementationTmpl = `Create a step-by-step implementation plan for adopting "{{.Title}}" in a school.
The implementation difficulty is {{.ImplementationDifficulty}}.
Resources required: {{join .ResourcesRequired}}.

Create a 5-step implementation plan with timeline, resources needed, and success metrics for each step.
Format as a numbered list with clear headings for each section.`

const resourceCalculationTmpl = `Calculate the resources needed to implement "{{.Trend.Title}}" for {{.Teachers}} teachers and {{.Students}} students.
Required resources include: {{join .Trend.ResourcesRequired}}.

Provide estimated costs, time commitments, and training needs.
Format as a bulleted list with clear categories.`

const trendInsightsTmpl = `Based on these educational trends:
{{- range $i, $t := .}}
{{inc $i}}. {{$t.Title}} ({{$t.Category}}, {{$t.AdoptionRate}}% adoption, {{printf "%.1f" $t.ImpactScore}}/5 impact)
{{- end}}

Provide 3 key insights about these trends and what they suggest about the future of education.
Format as bullet points and keep each insight under 50 words.`

var templates = template.Must(template.New("prompts").
	Funcs(template.FuncMap{
		"join": func(items []string) string { return strings.Join(items, ", ") },
		"inc":  func(i int) int { return i + 1 },
	}).
	Parse(""))

func init() {
	for name, body := range map[string]string{
		"insights":                insightsTmpl,
		"lesson_plan":             lessonPlanTmpl,
		"classroom_query":         classroomQueryTmpl,
		"voice_assistant":         voiceAssistantTmpl,
		"integration_plan":        integrationPlanTmpl,
		"trend_implementation":    trendImplementationTmpl,
		"stepwise_implementation": stepwiseImplementationTmpl,
		"resource_calculation":    resourceCalculationTmpl,
		"trend_insights":          trendInsightsTmpl,
	} {
		template.Must(templates.New(name).Parse(body))
	}
}

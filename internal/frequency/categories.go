package frequency

import "strings"

type termCategory struct {
	name     string
	keywords []string
}

// Category dictionaries checked in order: pain indicators first, then
// solution indicators, then technology indicators. The first substring hit
// wins.
var painCategories = []termCategory{
	{"problem", []string{"проблема", "проблемы", "сложность", "трудность", "problem", "issue", "trouble", "difficulty"}},
	{"error", []string{"ошибка", "ошибки", "баг", "глюк", "error", "bug", "crash", "fail", "failure"}},
	{"slow", []string{"медленно", "тормозит", "лагает", "виснет", "slow", "laggy", "freezing", "hang"}},
	{"need", []string{"нужно", "необходимо", "требуется", "хочется", "need", "want", "require", "wish"}},
	{"help", []string{"помощь", "помогите", "подскажите", "help", "assist", "support"}},
	{"complaint", []string{"жалоба", "недовольство", "плохо", "ужасно", "complaint", "bad", "terrible", "awful"}},
}

var solutionCategories = []termCategory{
	{"solution", []string{"решение", "решить", "исправить", "solution", "solve", "fix", "resolve"}},
	{"improvement", []string{"улучшение", "улучшить", "оптимизация", "improvement", "optimize", "enhance"}},
	{"feature", []string{"функция", "возможность", "фича", "feature", "functionality", "capability"}},
	{"tool", []string{"инструмент", "сервис", "программа", "tool", "service", "software", "app"}},
	{"method", []string{"способ", "метод", "подход", "method", "way", "approach", "technique"}},
}

var techCategories = []termCategory{
	{"programming", []string{"программирование", "код", "programming", "code", "development"}},
	{"database", []string{"база данных", "sql", "database", "mysql", "postgresql"}},
	{"web", []string{"веб", "сайт", "web", "website", "html", "css", "javascript"}},
	{"mobile", []string{"мобильный", "приложение", "mobile", "app", "android", "ios"}},
	{"ai", []string{"ии", "искусственный интеллект", "ai", "machine learning", "neural"}},
}

// CategorizeTerm tags a term with its semantic bucket: pain_*, solution_*,
// tech_*, or general when nothing matches.
func CategorizeTerm(term string) string {
	lower := strings.ToLower(term)

	if name := matchCategory(lower, painCategories); name != "" {
		return "pain_" + name
	}
	if name := matchCategory(lower, solutionCategories); name != "" {
		return "solution_" + name
	}
	if name := matchCategory(lower, techCategories); name != "" {
		return "tech_" + name
	}
	return "general"
}

func matchCategory(term string, categories []termCategory) string {
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(term, kw) {
				return c.name
			}
		}
	}
	return ""
}

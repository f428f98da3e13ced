package gemini

import "fmt"

// buildAnalysisPrompt asks for a strict-JSON Turkish verdict on one paper.
func buildAnalysisPrompt(input AnalyzeInput) string {
	abstract := input.Abstract
	if abstract == "" {
		abstract = "Özet yok."
	}
	return fmt.Sprintf(
		"Aşağıdaki makaleyi tez konusuna göre değerlendir.\n"+
			"Tez konusu: %s\n\n"+
			"Başlık: %s\n"+
			"Özet: %s\n\n"+
			"Yanıtı sadece JSON olarak ver. Anahtarlar: score (0-100 sayı), summary (1-2 cümle Türkçe), tags (3 kısa etiket).",
		input.ThesisTopic, input.Title, abstract,
	)
}

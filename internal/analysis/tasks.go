package analysis

import "github.com/nguyentantai21042004/meetbot/internal/domain/meeting"

// task is one extraction call: a fixed instruction over the whole transcript.
type task struct {
	field       string
	prompt      string
	placeholder string
	set         func(b *meeting.Bundle, text string)
}

var extractionTasks = []task{
	{
		field:       meeting.FieldAbstractSummary,
		prompt:      "You are a highly skilled AI trained in language comprehension and summarization. I would like you to read the following text and summarize it into a concise abstract paragraph. Aim to retain the most important points, providing a coherent and readable summary that could help a person understand the main points of the discussion without needing to read the entire text. Please avoid unnecessary details or tangential points.",
		placeholder: "Summary unavailable due to processing error.",
		set:         func(b *meeting.Bundle, text string) { b.AbstractSummary = text },
	},
	{
		field:       meeting.FieldKeyPoints,
		prompt:      "You are a proficient AI with a specialty in distilling information into key points. Based on the following text, identify and list the main points that were discussed or brought up. These should be the most important ideas, findings, or topics that are crucial to the essence of the discussion. Your goal is to provide a list that someone could read to quickly understand what was talked about.",
		placeholder: "Key points unavailable due to processing error.",
		set:         func(b *meeting.Bundle, text string) { b.KeyPoints = text },
	},
	{
		field:       meeting.FieldActionItems,
		prompt:      "You are an AI expert in analyzing conversations and extracting action items. Please review the text and identify any tasks, assignments, or actions that were agreed upon or mentioned as needing to be done. These could be tasks assigned to specific individuals, or general actions that the group has decided to take. Please list these action items clearly and concisely.",
		placeholder: "Action items unavailable due to processing error.",
		set:         func(b *meeting.Bundle, text string) { b.ActionItems = text },
	},
	{
		field:       meeting.FieldSentiment,
		prompt:      "As an AI with expertise in language and emotion analysis, your task is to analyze the sentiment of the following text. Please consider the overall tone of the discussion, the emotion conveyed by the language used, and the context in which words and phrases are used. Indicate whether the sentiment is generally positive, negative, or neutral, and provide brief explanations for your analysis where possible.",
		placeholder: "Neutral (analysis unavailable)",
		set:         func(b *meeting.Bundle, text string) { b.Sentiment = text },
	},
}

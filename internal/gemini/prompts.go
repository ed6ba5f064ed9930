package gemini

import "fmt"

const transcribePromptTimecoded = `Transcribe this audio recording into valid SRT subtitle format.

Requirements:
- Number every cue sequentially starting from 1
- Timecode lines use the form HH:MM:SS,mmm --> HH:MM:SS,mmm
- Prefix each line of speech with an inferred speaker label (Speaker 1, Speaker 2, ...)
- Return only the SRT content, nothing else`

const transcribePromptPlain = `Transcribe this audio recording accurately.

Requirements:
- Prefix each utterance with an inferred speaker label (Speaker 1, Speaker 2, ...)
- One utterance per line
- Return only the transcript text, nothing else`

const translatePromptStructured = `Translate the spoken text in the following SRT subtitles into %s.

Requirements:
- Keep every cue number, timecode line and speaker label exactly as they are
- Translate only the prose
- Return only the translated SRT content, nothing else

Subtitles:
---
%s
---`

const translatePromptPlain = `Translate the following transcript into %s.

Requirements:
- Keep speaker labels exactly as they are
- Return only the translated text, nothing else

Transcript:
---
%s
---`

const extractQuotesPrompt = `From the following transcript, select exactly 5 short, verbatim quotes that best capture its key moments. Attribute each quote to its speaker using the labels present in the text (or infer one).

Transcript:
---
%s
---`

func buildTranscribePrompt(timecodes bool) string {
	if timecodes {
		return transcribePromptTimecoded
	}
	return transcribePromptPlain
}

func buildTranslatePrompt(text, targetLanguage string, structured bool) string {
	if structured {
		return fmt.Sprintf(translatePromptStructured, targetLanguage, text)
	}
	return fmt.Sprintf(translatePromptPlain, targetLanguage, text)
}

func buildExtractQuotesPrompt(text string) string {
	return fmt.Sprintf(extractQuotesPrompt, text)
}

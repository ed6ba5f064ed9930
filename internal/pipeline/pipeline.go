package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/voicequill/voicequill/internal/language"
	"github.com/voicequill/voicequill/internal/srt"
)

// Process runs one file's full pipeline. A stage failure records the error
// on the job and stops the chain there; artifacts produced before the
// failure are kept and still exported.
func (p *implPipeline) Process(ctx context.Context, filePath string) error {
	startTime := time.Now()

	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	fileName := filepath.Base(filePath)
	job, created := p.manager.Create(fileName, info.Size(), info.ModTime(), filePath, p.cfg.Processing.Timecodes)
	if !created {
		p.logger.Debug(ctx, "Skipping already-queued file: %s", fileName)
		return nil
	}

	p.logger.Info(ctx, "Processing %s (job %s)", fileName, job.ID)

	if err := p.manager.BeginTranscription(job.ID); err != nil {
		return err
	}

	transcript, err := p.transcribe(ctx, filePath)
	if err != nil {
		if ferr := p.manager.FailTranscription(job.ID, err); ferr != nil {
			return ferr
		}
		return err
	}
	if err := p.manager.CompleteTranscription(job.ID, transcript); err != nil {
		return err
	}

	if p.cfg.Processing.TargetLanguage == "" {
		p.export(ctx, job.ID)
		return nil
	}

	target, _ := language.ByCode(p.cfg.Processing.TargetLanguage)
	translation, err := p.client.Translate(ctx, transcript, target.Name)
	if err != nil {
		p.manager.FailTranslation(job.ID, err)
		p.export(ctx, job.ID)
		return err
	}
	if err := p.manager.CompleteTranslation(job.ID, translation); err != nil {
		return err
	}

	if p.cfg.Processing.ExtractQuotes {
		text := translation
		if job.Timecodes {
			// Quotes come from speech content, not timing metadata.
			text = srt.Clean(translation)
		}

		quotes, err := p.client.ExtractQuotes(ctx, text)
		if err != nil {
			p.manager.FailQuotes(job.ID, err)
			p.export(ctx, job.ID)
			return err
		}
		if err := p.manager.CompleteQuotes(job.ID, quotes); err != nil {
			return err
		}
	}

	p.export(ctx, job.ID)

	p.logger.Info(ctx, "Finished %s in %s", fileName, time.Since(startTime))
	return nil
}

// transcribe reads the media, extracting audio first for video containers,
// and sends it for transcription.
func (p *implPipeline) transcribe(ctx context.Context, filePath string) (string, error) {
	audioPath := filePath
	if isVideoFile(filePath) {
		extracted, err := p.extractAudio(ctx, filePath)
		if err != nil {
			return "", err
		}
		defer p.cleanupTempFile(ctx, extracted)
		audioPath = extracted
	}

	mimeType, err := audioMIMEType(audioPath)
	if err != nil {
		return "", err
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	return p.client.Transcribe(ctx, audio, mimeType, p.cfg.Processing.Timecodes)
}

// export writes every artifact the job currently has. Missing artifacts
// are skipped, never an error.
func (p *implPipeline) export(ctx context.Context, jobID string) {
	job, ok := p.manager.Snapshot(jobID)
	if !ok {
		return
	}

	if path, err := p.exporter.TranscriptSRT(job); err != nil {
		p.logger.Warn(ctx, "Failed to write transcript SRT for %s: %v", job.FileName, err)
	} else if path != "" {
		p.logger.Info(ctx, "Wrote %s", path)
	}

	if path, err := p.exporter.TranslationSRT(job); err != nil {
		p.logger.Warn(ctx, "Failed to write translation SRT for %s: %v", job.FileName, err)
	} else if path != "" {
		p.logger.Info(ctx, "Wrote %s", path)
	}

	if path, err := p.exporter.Document(job); err != nil {
		p.logger.Warn(ctx, "Failed to write document for %s: %v", job.FileName, err)
	} else if path != "" {
		p.logger.Info(ctx, "Wrote %s", path)
	}
}

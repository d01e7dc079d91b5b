package agent

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/bgdnvk/parley/internal/agent/semantic"
	"github.com/bgdnvk/parley/internal/browser"
	"github.com/bgdnvk/parley/internal/story"
	"github.com/bgdnvk/parley/internal/wiki"
)

const (
	msgStoryFormat    = "Input format incorrect. Please use: 'add <number> <type> named <name1>, <name2>, ...'"
	msgStoryNamed     = "Input must contain 'named' followed by the names."
	msgNoResults      = "No results found."
	msgNoDomain       = "Could not determine a valid website domain from your input."
	msgTemplateDecode = "Template could not be decoded: "
)

// handleStory reads the story mode line, fills the template and prints the
// result. Parse and decode failures still print an empty story.
func (a *Agent) handleStory(turn *Turn) error {
	line, err := a.input.ReadLine(StoryPrompt)
	if err != nil {
		a.addThought(turn, "story mode input ended", "read_story_line", err.Error())
		return err
	}

	text := a.generateStory(turn, strings.ToLower(line))
	a.printf(turn, "\nGenerated Story:\n%s\n", text)
	return nil
}

func (a *Agent) generateStory(turn *Turn, line string) string {
	req, err := story.ParseCommand(strings.Fields(line))
	switch {
	case errors.Is(err, story.ErrMissingAddClause):
		a.printf(turn, "%s\n", msgStoryFormat)
		a.addThought(turn, "story command rejected", "parse_story", err.Error())
		return ""
	case errors.Is(err, story.ErrMissingNamedClause):
		a.printf(turn, "%s\n", msgStoryNamed)
		a.addThought(turn, "story command rejected", "parse_story", err.Error())
		return ""
	}

	a.printf(turn, "\nExtracted variables:\n")
	a.printf(turn, "characters: %s\n", req.Count)
	a.printf(turn, "type: %s\n", req.TypeLabel)
	a.printf(turn, "names: %s\n", strings.Join(req.Names, ", "))

	tmpl, err := story.LoadTemplate(a.templatePath)
	if err != nil {
		a.printf(turn, "%s%v\n", msgTemplateDecode, err)
		a.logger.Warn("template load failed", zap.String("path", a.templatePath), zap.Error(err))
		return ""
	}
	if tmpl.Fallback {
		a.printf(turn, "File '%s' not found. Using default template.\n", tmpl.Path)
	}

	a.addThought(turn, "story rendered", "render_story", tmpl.Path)
	return story.Render(tmpl.Text, req.Names)
}

func (a *Agent) handleHowQuestion(turn *Turn) {
	reply := a.composer.HowQuestion(turn.Utterance.String(), turn.HasAre)
	a.printf(turn, "%s\n", reply.Text)
	a.logger.Debug("how question",
		zap.Bool("to_agent", reply.ToAgent),
		zap.Bool("about_agent", reply.AboutAgent),
		zap.String("additional", reply.AdditionalText),
	)
}

func (a *Agent) handleSelfDisclosure(turn *Turn) {
	reply := a.composer.SelfDisclosure(turn.Utterance.String())
	a.printf(turn, "%s\n%s\n", reply.Ack, reply.Text)

	polarity := "negative"
	if reply.Tally.IsPositive() {
		polarity = "positive"
	}
	a.addThought(turn, "sentiment tallied", "tally", polarity)
}

func (a *Agent) handleEncyclopedia(ctx context.Context, turn *Turn) {
	term := strings.TrimSpace(turn.Utterance.String())

	title, found, err := a.wiki.Search(ctx, term)
	if err != nil {
		a.logger.Warn("encyclopedia search failed", zap.String("term", term), zap.Error(err))
		a.printf(turn, "%s\n", wiki.NoSummary)
		return
	}
	if !found {
		a.printf(turn, "%s\n", msgNoResults)
		return
	}

	summary := a.wiki.Summary(ctx, title, a.summaryLength)
	a.printf(turn, "Title: %s\nSummary: %s\n", title, summary)
	a.addThought(turn, "encyclopedia article found", "lookup", title)
}

func (a *Agent) handleWebsite(turn *Turn) {
	extraction, err := a.analyzer.Extract(turn.Utterance.String())
	if errors.Is(err, semantic.ErrNoDomainFound) {
		a.printf(turn, "%s\n", msgNoDomain)
		return
	}

	url := browser.BuildURL(extraction.Domain, extraction.Query)
	a.printf(turn, "Opening: %s\n", url)
	if err := a.launcher.Open(url); err != nil {
		a.logger.Warn("browser launch failed", zap.String("url", url), zap.Error(err))
	}
	a.addThought(turn, "website opened", "open_website", url)
}

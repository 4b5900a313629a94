package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/metrics"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/notifier"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/stats"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface

func (s *Notifier) SendResultNotification(match *club.MatchRecord, dryRun bool) error {
	msg := s.formatResultNotification(match)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(careers []stats.PlayerCareerStats, dryRun bool) error {
	msg := s.formatLeaderboard(careers)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerStats(career *stats.PlayerCareerStats, query string, dryRun bool) error {
	if career == nil {
		msg := s.formatPlayerNotFound(query)
		_, _, err := s.sendMessage(msg, dryRun)
		return err
	}
	msg := s.formatPlayerStats(career)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatResultNotification creates the Slack message for a finished match using Block Kit.
func (s *Notifier) formatResultNotification(match *club.MatchRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏏 Match finished! 🏏", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details
	detailsText := fmt.Sprintf("%s vs %s on %s", match.TeamA, match.TeamB, match.MatchDate)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	// Scorecard
	scoreFields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("plain_text", fmt.Sprintf("%s\n%d/%d", match.TeamA, match.TeamAScore, match.TeamAWickets), true, false),
		slack.NewTextBlockObject("plain_text", fmt.Sprintf("%s\n%d/%d", match.TeamB, match.TeamBScore, match.TeamBWickets), true, false),
	}

	resultHeaderText := "Result: Match tied."
	if match.Winner != cricket.ResultTie {
		resultHeaderText = fmt.Sprintf("Result: %s won! 🏆", match.Winner)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultHeaderText, true, false), scoreFields, nil))

	// Context (Man of the Match)
	if match.ManOfMatch != "" {
		momText := fmt.Sprintf("⭐ %s is the Man of the Match!", match.ManOfMatch)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", momText, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the club leaderboard.
func (s *Notifier) formatLeaderboard(careers []stats.PlayerCareerStats) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Club Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(careers) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No stats available yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Player ranks
	for i, career := range careers {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Runs: %d | Wickets: %d | Win %%: %s | MoM: %d",
			rank,
			medal,
			career.PlayerName,
			career.TotalRuns,
			career.TotalWickets,
			career.WinPercentage,
			career.ManOfMatchCount,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's career.
func (s *Notifier) formatPlayerStats(career *stats.PlayerCareerStats) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := fmt.Sprintf("🏏 Stats for %s 🏏", career.PlayerName)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	boundaries := []string{
		fmt.Sprintf("1s: %d", career.Ones),
		fmt.Sprintf("2s: %d", career.Twos),
		fmt.Sprintf("3s: %d", career.Threes),
		fmt.Sprintf("4s: %d", career.Fours),
		fmt.Sprintf("6s: %d", career.Sixes),
	}

	playerText := fmt.Sprintf("> *Matches*: %d (%d won, %s)\n> *Runs*: %d (avg %s)\n> *Wickets*: %d (avg %s)\n> *Man of the Match*: %d\n> *Scoring*: %s",
		career.TotalMatches,
		career.TotalWins,
		career.WinPercentage,
		career.TotalRuns,
		career.BattingAverage,
		career.TotalWickets,
		career.BowlingAverage,
		career.ManOfMatchCount,
		strings.Join(boundaries, " | "),
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's stats are not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

package main

import (
	"context"
	"strings"
	"time"

	"github.com/whyrusleeping/hellabot"

	"kgeyst.com/describer/pkg/common"
	"kgeyst.com/describer/pkg/describer/api"
	"kgeyst.com/describer/pkg/describer/infrastructure/web"
)

const (
	describeTimeout  = time.Minute
	jobQueueCapacity = 16
)

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := common.LoadConfig("config.yaml")
	if err != nil {
		return err
	}
	botName := config.GetStringOrDefault("ircNick", "Describer")
	channelName := config.GetStringOrDefault("ircChannel", "DescriberRoom")
	serverName := config.GetStringOrDefault("ircServer", "irc.euirc.net:6667")
	logger := common.NewFileLogger(config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"))
	describer := api.NewAPIWithLogger(config, logger)
	urlFinder := web.NewURLFinder()
	// Describing takes a while; the bot's read loop must keep answering PINGs meanwhile.
	jobQueue := common.NewJobQueue(jobQueueCapacity, logger)
	defer jobQueue.Stop()
	ircBot, err := hbot.NewBot(serverName, botName)
	if err != nil {
		return err
	}
	var trigger = hbot.Trigger{
		Condition: func(b *hbot.Bot, m *hbot.Message) bool {
			return m.Command == "PRIVMSG" && strings.HasPrefix(strings.ToLower(m.Content), strings.ToLower(botName))
		},
		Action: func(b *hbot.Bot, m *hbot.Message) bool {
			what, ok := parseRequest(m.Content, botName)
			if !ok || len(m.To) == 0 || m.To[0] != '#' {
				return false
			}
			url, ok := findWebURL(urlFinder.FindURLs(what))
			if !ok {
				return false
			}
			jobQueue.Enqueue(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), describeTimeout)
				defer cancel()
				var description string
				var err error
				if strings.HasPrefix(what, "feed ") {
					description, err = describer.DescribeFeed(ctx, url)
				} else {
					description, err = describer.DescribeURL(ctx, url)
				}
				b.Reply(m, m.From+" "+formatReply(description, err))
				return err
			})
			return true
		},
	}
	ircBot.AddTrigger(trigger)
	ircBot.Channels = []string{"#" + channelName}
	ircBot.Run()
	return nil
}

// parseRequest strips the bot's name (and an optional comma/colon after it) from a message such as
// "Describer, https://example.com/cat.jpg".
func parseRequest(content, botName string) (string, bool) {
	if len(content) < len(botName) || !strings.EqualFold(content[:len(botName)], botName) {
		return "", false
	}
	what := strings.TrimSpace(content[len(botName):])
	what = strings.TrimSpace(strings.TrimLeft(what, ",:"))
	return what, what != ""
}

// findWebURL returns the first http(s) URL. Chat users must never be able to reach local files.
func findWebURL(urls []string) (string, bool) {
	for _, url := range urls {
		lower := strings.ToLower(url)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
			return url, true
		}
	}
	return "", false
}

func formatReply(description string, err error) string {
	if err != nil {
		return "I couldn't look at the picture :("
	}
	if description == "" {
		return "no idea what's on the picture"
	}
	return "I see " + description
}

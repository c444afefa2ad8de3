package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"kgeyst.com/describer/pkg/common"
	"kgeyst.com/describer/pkg/describer/api"
)

const feedCommandPrefix = ":feed "

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
	describer := api.NewAPI(config)
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var description string
		if strings.HasPrefix(line, feedCommandPrefix) {
			description, err = describer.DescribeFeed(context.Background(), strings.TrimSpace(line[len(feedCommandPrefix):]))
		} else {
			description, err = describer.DescribeText(context.Background(), line)
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		if description == "" {
			description = "no idea what's on the picture"
		}
		fmt.Println(description)
	}
	return nil
}

// Package docs embeds the psc documentation topics.
package docs

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed *.md
var files embed.FS

// index is the topic introducing psc, and listing every other topic.
const index = "readme"

// indexEntry matches a "* <topic>: <description>" line of the index.
var indexEntry = regexp.MustCompile(`^\*\s+([^:]+):`)

// GetAllTopics returns the topics in the order the index lists them.
func GetAllTopics() ([]string, error) {
	content, err := files.ReadFile(index + ".md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for line := range strings.Lines(string(content)) {
		if m := indexEntry.FindStringSubmatch(line); m != nil {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	return topics, nil
}

// GetTopic returns the content of a topic, "*" being every topic of the index.
func GetTopic(topic string) (string, error) { return GetTopics(topic) }

// GetTopics concatenates the content of topics.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			names = all
		}
		for _, name := range names {
			content, err := files.ReadFile(name + ".md")
			if err != nil {
				return "", fmt.Errorf("unknown topic %q: %w", name, err)
			}
			b.Write(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

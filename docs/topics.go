// Package docs holds the rnt documentation topics, one markdown file each.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Topic is one documentation page, as announced in readme.md.
type Topic struct {
	Name        string
	Description string
}

// announced matches the "* name: description" lines of readme.md.
var announced = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Topics returns the topics listed in readme.md, in order.
func Topics() ([]Topic, error) {
	content, err := docs.ReadFile("readme.md")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	sc := bufio.NewScanner(strings.NewReader(string(content)))
	for sc.Scan() {
		if m := announced.FindStringSubmatch(sc.Text()); m != nil {
			topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Description: strings.TrimSpace(m[2])})
		}
	}
	return topics, sc.Err()
}

// GetTopic returns the content of a documentation topic. "*" is every topic.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(topic)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, see 'rnt topic': %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of the given topics, one after the other.
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
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns the name of every topic file but the readme, sorted.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		if name := strings.TrimSuffix(f, ".md"); name != "readme" {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

package config

import (
	"github.com/haldis/exa-mcp/pkg/tool/answer"
	"github.com/haldis/exa-mcp/pkg/tool/contents"
	"github.com/haldis/exa-mcp/pkg/tool/research"
	"github.com/haldis/exa-mcp/pkg/tool/search"
	"github.com/haldis/exa-mcp/pkg/tool/similar"
	"github.com/haldis/exa-mcp/pkg/tool/webset"
)

func (c *Config) registerTools(f *configFile) error {
	searchTool, err := search.New(c.Client)

	if err != nil {
		return err
	}

	similarTool, err := similar.New(c.Client)

	if err != nil {
		return err
	}

	contentsTool, err := contents.New(c.Client)

	if err != nil {
		return err
	}

	answerTool, err := answer.New(c.Client)

	if err != nil {
		return err
	}

	researchTool, err := research.New(c.Client)

	if err != nil {
		return err
	}

	websetTool, err := webset.New(c.Client)

	if err != nil {
		return err
	}

	c.Tools = append(c.Tools, searchTool, similarTool, contentsTool, answerTool, researchTool, websetTool)

	return nil
}

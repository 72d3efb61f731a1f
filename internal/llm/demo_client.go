package llm

import (
	"context"
	"strings"
)

// DemoText is returned by the demo client when no override is configured.
const DemoText = "Renewable energy is crucial for combating climate change and ensuring sustainable development. Unlike fossil fuels, which contribute to environmental damage and greenhouse gas emissions, renewable sources like solar, wind, hydroelectric, and biomass offer cleaner alternatives to meet energy demands. These energy sources help reduce carbon emissions, improve air quality, and support energy security by being widely available and reducing dependence on imported fuels. The renewable energy sector also stimulates economic growth, providing millions of jobs worldwide. However, challenges such as energy supply variability and high initial infrastructure costs remain. Despite these, renewable energy holds great potential for a cleaner, more sustainable future as technology improves and costs decline."

type demoClient struct {
	text string
}

func newDemoClient(text string) *demoClient {
	if strings.TrimSpace(text) == "" {
		text = DemoText
	}
	return &demoClient{text: text}
}

func (c *demoClient) Name() string { return "Demo (canned response)" }

func (c *demoClient) Complete(ctx context.Context, _ Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.text, nil
}

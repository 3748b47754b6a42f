package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-lens-pathtracer/pkg/scene"
)

// ListScenes prints the built-in scenes and the scene files found in --dir.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	response, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}
	logger.Noticef("available scenes\n%s", scenesTable(response))
	return nil
}

func scenesTable(response scene.ScenesResponse) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "ID", "Name", "Description"})
	for _, group := range response.Groups {
		for _, s := range group.Scenes {
			table.Append([]string{group.Name, s.ID, s.Name, s.Description})
		}
	}
	table.Render()
	return buf.String()
}

package main

import (
	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
)

type CLI struct {
	EnvFile kongdotenv.ENVFileConfig `kong:"optional,name=env-file,default='.env',help='Load environment variables from this file.'"`

	Data string `help:"Path to the daily rentals CSV." default:"day.csv" env:"BIKEUSAGE_DATA" type:"path"`

	Serve   ServeCmd   `cmd:"" default:"withargs" help:"Run the dashboard web server."`
	Summary SummaryCmd `cmd:"" help:"Print the dashboard aggregates."`
	Render  RenderCmd  `cmd:"" help:"Write the dashboard charts as PNG files."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bikeusage"),
		kong.Description("Bike usage analysis dashboard over daily rental records."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}

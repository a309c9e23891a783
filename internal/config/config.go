package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Discord *DiscordConfig
	Poe     *PoeConfig
	Bot     *BotConfig
	Store   *StoreConfig
}

type DiscordConfig struct {
	Token   string
	GuildID string
}

type PoeConfig struct {
	URL     string
	PB      string
	Lat     string
	Timeout time.Duration
}

type BotConfig struct {
	Admins  []string
	Verbose bool
}

type StoreConfig struct {
	File         string
	DefaultModel string
}

// YamlSource implements cli.ValueSource for a map loaded from YAML
type YamlSource struct {
	data map[string]any
	key  string
}

func (y *YamlSource) Lookup() (string, bool) {
	if v, ok := y.data[y.key]; ok {
		// Handle slices by joining with comma
		if slice, ok := v.([]any); ok {
			var strs []string
			for _, item := range slice {
				strs = append(strs, fmt.Sprintf("%v", item))
			}
			return strings.Join(strs, ","), true
		}
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

func (y *YamlSource) String() string   { return "yaml" }
func (y *YamlSource) GoString() string { return "yaml" }

func GetFlags() []cli.Flag {
	// Pre-parse config path
	configPath := getConfigPath()
	var configData map[string]any
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			_ = yaml.Unmarshal(data, &configData)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file %s: %v\n", configPath, err)
		}
	}

	// Helper to create sources: EnvVar > YAML > Default
	src := func(key string, env ...string) cli.ValueSourceChain {
		chain := cli.ValueSourceChain{}
		for _, e := range env {
			chain.Chain = append(chain.Chain, cli.EnvVar(e))
		}
		if configData != nil {
			chain.Chain = append(chain.Chain, &YamlSource{data: configData, key: key})
		}
		return chain
	}

	return []cli.Flag{
		// Config file
		&cli.StringFlag{Name: "config", Aliases: []string{"b"}, Usage: "use the named configuration file", Sources: cli.EnvVars("POEGATE_CONFIG")},

		// Discord Configuration
		&cli.StringFlag{Name: "discordtoken", Aliases: []string{"d"}, Usage: "discord bot token", Sources: src("discordtoken", "POEGATE_DISCORDTOKEN", "DISCORD_TOKEN")},
		&cli.StringFlag{Name: "guildid", Aliases: []string{"g"}, Usage: "discord guild the slash commands are registered to", Sources: src("guildid", "POEGATE_GUILDID", "GUILD_ID")},

		// Poe Configuration
		&cli.StringFlag{Name: "poepb", Usage: "poe.com p-b auth cookie", Sources: src("poepb", "POEGATE_POEPB", "POE_PB")},
		&cli.StringFlag{Name: "poelat", Usage: "poe.com p-lat auth cookie", Sources: src("poelat", "POEGATE_POELAT", "POE_PLAT")},
		&cli.StringFlag{Name: "poeurl", Value: "https://poe.com", Usage: "poe API base URL", Sources: src("poeurl", "POEGATE_POEURL")},
		&cli.DurationFlag{Name: "apitimeout", Aliases: []string{"t"}, Value: time.Minute * 5, Usage: "timeout for each poe request", Sources: src("apitimeout", "POEGATE_APITIMEOUT")},

		// Bot Configuration
		&cli.StringSliceFlag{Name: "admins", Aliases: []string{"A"}, Usage: "comma-separated list of discord user IDs allowed to administrate the bot", Sources: src("admins", "POEGATE_ADMINS")},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "enable verbose logging of requests and configuration", Sources: src("verbose", "POEGATE_VERBOSE")},

		// Guild model store
		&cli.StringFlag{Name: "statefile", Value: "llm_choices.json", Usage: "path of the per-guild model choice file", Sources: src("statefile", "POEGATE_STATEFILE")},
		&cli.StringFlag{Name: "defaultmodel", Value: "gpt3_5", Usage: "model used by guilds that never picked one", Sources: src("defaultmodel", "POEGATE_DEFAULTMODEL")},
	}
}

func getConfigPath() string {
	// Check env first
	if v := os.Getenv("POEGATE_CONFIG"); v != "" {
		return v
	}
	// Check args
	for i, arg := range os.Args {
		if arg == "--config" || arg == "-b" {
			if i+1 < len(os.Args) {
				return os.Args[i+1]
			}
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

// Validate checks the inputs the bot cannot start without.
func (c *Configuration) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("discord token is not set (use --discordtoken or DISCORD_TOKEN)")
	}
	if c.Poe.PB == "" {
		return fmt.Errorf("poe p-b cookie is not set (use --poepb or POE_PB)")
	}
	if c.Poe.Lat == "" {
		return fmt.Errorf("poe p-lat cookie is not set (use --poelat or POE_PLAT)")
	}
	if c.Discord.GuildID == "" {
		return fmt.Errorf("guild id is not set (use --guildid or GUILD_ID)")
	}
	if _, err := strconv.ParseUint(c.Discord.GuildID, 10, 64); err != nil {
		return fmt.Errorf("guild id %q is not an integer snowflake", c.Discord.GuildID)
	}
	return nil
}

func (c *Configuration) PrintConfig() {
	fmt.Printf("guildid: %s\n", c.Discord.GuildID)
	fmt.Printf("admins: %v\n", c.Bot.Admins)
	fmt.Printf("verbose: %t\n", c.Bot.Verbose)
	fmt.Printf("poeurl: %s\n", c.Poe.URL)
	fmt.Printf("apitimeout: %s\n", c.Poe.Timeout)
	fmt.Printf("statefile: %s\n", c.Store.File)
	fmt.Printf("defaultmodel: %s\n", c.Store.DefaultModel)
	if len(c.Discord.Token) > 3 && c.Discord.Token != "" {
		fmt.Printf("discordtoken: %s\n", strings.Repeat("*", len(c.Discord.Token)-3)+c.Discord.Token[len(c.Discord.Token)-3:])
	} else {
		fmt.Printf("discordtoken: %s\n", c.Discord.Token)
	}
	if len(c.Poe.PB) > 3 && c.Poe.PB != "" {
		fmt.Printf("poepb: %s\n", strings.Repeat("*", len(c.Poe.PB)-3)+c.Poe.PB[len(c.Poe.PB)-3:])
	} else {
		fmt.Printf("poepb: %s\n", c.Poe.PB)
	}
	if len(c.Poe.Lat) > 3 && c.Poe.Lat != "" {
		fmt.Printf("poelat: %s\n", strings.Repeat("*", len(c.Poe.Lat)-3)+c.Poe.Lat[len(c.Poe.Lat)-3:])
	} else {
		fmt.Printf("poelat: %s\n", c.Poe.Lat)
	}
}

func NewConfiguration(c *cli.Command) *Configuration {
	if c.IsSet("config") {
		zap.S().Infow("Using config file", "path", c.String("config"))
	}

	config := &Configuration{
		Discord: &DiscordConfig{
			Token:   c.String("discordtoken"),
			GuildID: c.String("guildid"),
		},
		Poe: &PoeConfig{
			URL:     c.String("poeurl"),
			PB:      c.String("poepb"),
			Lat:     c.String("poelat"),
			Timeout: c.Duration("apitimeout"),
		},
		Bot: &BotConfig{
			Admins:  c.StringSlice("admins"),
			Verbose: c.Bool("verbose"),
		},
		Store: &StoreConfig{
			File:         c.String("statefile"),
			DefaultModel: c.String("defaultmodel"),
		},
	}

	return config
}

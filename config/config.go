package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "SHOP_CONFIG_FILE"

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	OrderPlacedTopic   string   `mapstructure:"order_placed_topic"`
	ConfirmationGroup  string   `mapstructure:"confirmation_group"`
}

type shop struct {
	OrderIDPrefix string `mapstructure:"order_id_prefix"`
	MarkupPercent int    `mapstructure:"markup_percent"`
	PriceCSV      string `mapstructure:"price_csv"`
	ProductsCSV   string `mapstructure:"products_csv"`
}

type email struct {
	SMTPAddr       string   `mapstructure:"smtp_addr"`
	From           string   `mapstructure:"from"`
	User           string   `mapstructure:"user"`
	Pass           string   `mapstructure:"pass"`
	StaffEmails    []string `mapstructure:"staff_emails"`
	TemplateFlavor string   `mapstructure:"template_flavor"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	Broker         broker     `mapstructure:"broker"`
	Shop           shop       `mapstructure:"shop"`
	Email          email      `mapstructure:"email"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	OrderPlacedTopic=%q
	ConfirmationGroup=%q

	ShopConfig:
	OrderIDPrefix=%q
	MarkupPercent=%d
	PriceCSV=%q
	ProductsCSV=%q

	EmailConfig:
	SMTPAddr=%q
	From=%q
	StaffEmails=%q
	TemplateFlavor=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SQLDB,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.OrderPlacedTopic,
		c.Broker.ConfirmationGroup,
		c.Shop.OrderIDPrefix,
		c.Shop.MarkupPercent,
		c.Shop.PriceCSV,
		c.Shop.ProductsCSV,
		c.Email.SMTPAddr,
		c.Email.From,
		c.Email.StaffEmails,
		c.Email.TemplateFlavor,
	)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/poimap/poi-api/importer"
	"github.com/poimap/poi-api/search"
)

var rootCmd = &cobra.Command{
	Use:   "import-poi",
	Short: "Replace the POI catalog with a raw JSON export",
	Long:  "Clears the POI collection, inserts every valid record of the export and rebuilds the search index.",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		configFile, _ := cmd.Flags().GetString("config")
		loadConfig(configFile)
		initLog()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		index, err := search.New(search.Config{
			Addresses: viper.GetStringSlice("elasticsearch.addresses"),
			CloudID:   viper.GetString("elasticsearch.cloud_id"),
			APIKey:    viper.GetString("elasticsearch.api_key"),
			Index:     viper.GetString("elasticsearch.index"),
		})
		if err != nil {
			return err
		}

		file := viper.GetString("import.file")
		log.WithField("prefix", "init").Infof("importing %s", file)

		summary, err := importer.NewFromClient(client, viper.GetString("mongo.database"), index).ImportFile(ctx, file)
		if err != nil {
			return err
		}

		fmt.Printf("read %d, skipped %d, inserted %d, indexed %d, index failures %d\n",
			summary.Read, summary.Skipped, summary.Inserted, summary.Index.Indexed, summary.Index.Failed)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "./config.yaml", "[optional] path of configuration file")
	rootCmd.Flags().StringP("file", "f", "pois.json", "path of the raw POI export")
	_ = viper.BindPFlag("import.file", rootCmd.Flags().Lookup("file"))
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("mongo.conn", "mongodb://127.0.0.1:27017")
	viper.SetDefault("mongo.database", "poi")
	viper.SetDefault("elasticsearch.addresses", []string{"http://127.0.0.1:9200"})
	viper.SetDefault("elasticsearch.index", search.DefaultIndexName)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("poi")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

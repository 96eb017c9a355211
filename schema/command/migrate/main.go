package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/poimap/poi-api/schema"
	"github.com/poimap/poi-api/search"
)

func init() {
	viper.SetDefault("mongo.conn", "mongodb://127.0.0.1:27017")
	viper.SetDefault("mongo.database", "poi")
	viper.SetDefault("elasticsearch.addresses", []string{"http://127.0.0.1:9200"})
	viper.SetDefault("elasticsearch.index", search.DefaultIndexName)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("poi")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	log.SetOutput(os.Stdout)
	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "[optional] path of configuration file")
	flag.Parse()

	if configFile != "" {
		viper.SetConfigType("yaml")
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println("fail to read config file:", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := migrateMongo(ctx); err != nil {
		log.WithField("prefix", "migrate").Panic(err)
	}

	if err := migrateSearchIndex(ctx); err != nil {
		log.WithField("prefix", "migrate").Panic(err)
	}
}

func migrateMongo(ctx context.Context) error {
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	if err := schema.NewMongoDBIndexer(client, viper.GetString("mongo.database")).IndexAll(ctx); err != nil {
		fmt.Println("failed to set up collection `poi`: ", err)
		return err
	}

	log.WithField("prefix", "migrate").Info("mongo indexes are ready")
	return nil
}

func migrateSearchIndex(ctx context.Context) error {
	index, err := search.New(search.Config{
		Addresses: viper.GetStringSlice("elasticsearch.addresses"),
		CloudID:   viper.GetString("elasticsearch.cloud_id"),
		APIKey:    viper.GetString("elasticsearch.api_key"),
		Index:     viper.GetString("elasticsearch.index"),
	})
	if err != nil {
		return err
	}

	if err := index.EnsureIndex(ctx); err != nil {
		fmt.Println("failed to set up search index: ", err)
		return err
	}

	log.WithField("prefix", "migrate").Info("search index is ready")
	return nil
}

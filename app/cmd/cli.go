package cmd

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tokolaju/katalog/app/configs"
	"github.com/tokolaju/katalog/app/db/seeders"
	"github.com/tokolaju/katalog/app/repositories"
	"github.com/tokolaju/katalog/app/services"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "Seed the catalog database with sample categories and products",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.Seed(ctx, db); err != nil {
						return err
					}
					log.Println("✅ Catalog seed complete")
					return nil
				},
			},
			{
				Name:  "archive-images",
				Usage: "Download every product image into the local image directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "target directory for downloaded images",
						Value: configs.LoadENV.ImageDir,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					archiver := services.NewImageArchiver(repositories.NewProductRepository(db), c.String("dir"))
					if err := archiver.ArchiveAll(ctx); err != nil {
						return err
					}
					log.Println("✅ Image archive complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

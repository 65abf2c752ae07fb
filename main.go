package main

import (
	"log"
	"net/http"
	"os"

	"github.com/tokolaju/katalog/app/cmd"
	"github.com/tokolaju/katalog/app/configs"
	"github.com/tokolaju/katalog/app/routes"
	"github.com/tokolaju/katalog/app/utils/kvstore"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	if env.SESSION_KEY == "" {
		log.Fatal("SESSION_KEY is empty! Please check your .env file.")
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	carts, err := kvstore.OpenBolt(env.CartDBPath)
	if err != nil {
		log.Fatal("Cart database failed:", err)
	}
	defer carts.Close()
	log.Println("✅ Cart database opened.")

	router := routes.NewRouter(db, carts, env)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}

package main

import (
	"context"

	"github.com/mberetvas/FoodScraper/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}

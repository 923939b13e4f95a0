package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"
	"github.com/milk9111/executioner/debugview"
)

// statewatch prints the state switches streamed by a game started with
// -debug -ws.
func main() {
	url := flag.String("url", "ws://localhost:7777/ws", "debug stream address")
	flag.Parse()

	conn, resp, err := websocket.DefaultDialer.Dial(*url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		log.Fatalf("statewatch: dial %s: %v", *url, err)
	}
	defer conn.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return
			}
			log.Printf("statewatch: %v", err)
			return
		}
		var msg debugview.Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Printf("statewatch: decode: %v", err)
			continue
		}
		fmt.Printf("%6d  %s\n", msg.Seq, msg.State)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	feedClients = make(map[uint]map[*websocket.Conn]bool)
	feedMutex   sync.Mutex
)

func attendanceChannel(eventId uint) string {
	return fmt.Sprintf("event:%d:absensi", eventId)
}

// PublishAttendance kirim hasil scan ke channel redis event terkait.
// Kalau redis tidak tersedia, feed live saja yang mati, scan tetap jalan.
func PublishAttendance(eventId uint, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Gagal marshal payload feed: %v", err)
		return
	}
	if err := redisClient.Publish(context.Background(), attendanceChannel(eventId), data).Err(); err != nil {
		log.Printf("Gagal publish feed absensi: %v", err)
	}
}

// AttendanceFeed handler WS untuk dashboard live check-in per event
func AttendanceFeed(c *websocket.Conn) {
	eventIdStr := c.Params("eventId")
	id64, err := strconv.ParseUint(eventIdStr, 10, 64)
	if err != nil {
		log.Printf("Invalid eventId: %s", eventIdStr)
		c.Close()
		return
	}
	eventId := uint(id64)

	feedMutex.Lock()
	if feedClients[eventId] == nil {
		feedClients[eventId] = make(map[*websocket.Conn]bool)
	}
	feedClients[eventId][c] = true
	feedMutex.Unlock()

	defer func() {
		feedMutex.Lock()
		delete(feedClients[eventId], c)
		if len(feedClients[eventId]) == 0 {
			delete(feedClients, eventId)
		}
		feedMutex.Unlock()
		c.Close()
	}()

	pubsub := redisClient.Subscribe(
		context.Background(),
		attendanceChannel(eventId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		feedMutex.Lock()
		for conn := range feedClients[eventId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(feedClients[eventId], conn)
			}
		}
		feedMutex.Unlock()
	}
}

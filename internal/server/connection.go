package server

import (
	"context"
	"encoding/json"
	rand "math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/ribhisaleh/poker-trainer/internal/eval"
	"github.com/ribhisaleh/poker-trainer/internal/randutil"
	"github.com/ribhisaleh/poker-trainer/internal/session"
	"github.com/ribhisaleh/poker-trainer/internal/sessionid"
	"github.com/ribhisaleh/poker-trainer/internal/spot"
)

// Connection represents a WebSocket connection to a client. Each connection
// runs its own practice session; nothing is shared between clients and
// nothing survives a disconnect.
type Connection struct {
	id        string
	conn      *websocket.Conn
	send      chan *Message
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	// Practice state, touched only from the read pump goroutine.
	rng      *rand.Rand
	gen      *spot.Generator
	sess     *session.Session
	current  *spot.Spot
	round    int
	answered bool
}

// NewConnection creates a new connection wrapper. The seed determines every
// deal the connection will see, so a test can replay a whole session.
func NewConnection(conn *websocket.Conn, logger *log.Logger, seed int64) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	rng := randutil.New(seed)
	id := sessionid.New(rng)

	return &Connection{
		id:     id,
		conn:   conn,
		send:   make(chan *Message, 256),
		logger: logger.WithPrefix("conn").With("session", id),
		ctx:    ctx,
		cancel: cancel,
		rng:    rng,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// SendMessage sends a message to the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed, expected during shutdown
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var ErrConnectionClosed = websocket.ErrCloseSent

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			break
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type)

	switch msg.Type {
	case MessageTypeStart:
		var data StartData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse start data")
			return
		}
		c.handleStart(data)

	case MessageTypeAnswer:
		var data AnswerData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse answer data")
			return
		}
		c.handleAnswer(data)

	case MessageTypeNext:
		c.handleNext()

	case MessageTypeEnd:
		c.handleEnd()

	default:
		c.sendError("unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

// sendError sends an error message to the client
func (c *Connection) sendError(code, message string) {
	errorMsg, err := NewMessage(MessageTypeError, ErrorData{
		Code:    code,
		Message: message,
	})
	if err != nil {
		c.logger.Error("Failed to create error message", "error", err)
		return
	}

	_ = c.SendMessage(errorMsg)
}

func (c *Connection) handleStart(data StartData) {
	mode, err := spot.ParseMode(data.Mode)
	if err != nil {
		c.sendError("invalid_mode", err.Error())
		return
	}

	seed := data.Seed
	if seed == 0 {
		seed = c.rng.Int64()
	}

	c.logger.Info("Session started", "mode", mode, "seed", seed)

	c.gen = spot.NewGenerator(randutil.New(seed))
	c.sess = session.New(mode, nil)
	c.round = 0
	c.dealNext()
}

func (c *Connection) handleAnswer(data AnswerData) {
	if c.current == nil || c.answered {
		c.sendError("no_active_spot", "Nothing to answer; send start or next first")
		return
	}

	var result session.Result
	switch c.sess.Mode() {
	case spot.HandRecognition:
		cat, err := eval.ParseHandCategory(data.Answer)
		if err != nil {
			c.sendError("invalid_answer", err.Error())
			return
		}
		result = c.sess.GradeHand(*c.current, cat)

	case spot.OutsPractice:
		outs, err := strconv.Atoi(data.Answer)
		if err != nil {
			c.sendError("invalid_answer", "answer must be a whole number of outs")
			return
		}
		result = c.sess.GradeOuts(*c.current, outs)

	case spot.DecisionLab:
		decision, err := eval.ParseDecision(data.Answer)
		if err != nil {
			c.sendError("invalid_answer", err.Error())
			return
		}
		result = c.sess.GradeDecision(*c.current, decision)
	}

	c.answered = true
	c.logger.Debug("Answer graded", "round", c.round, "correct", result.Correct)

	response, _ := NewMessage(MessageTypeResult, ResultData{
		Correct:    result.Correct,
		Expected:   result.Expected,
		Answer:     result.Answer,
		XPEarned:   result.XPEarned,
		XP:         c.sess.XP(),
		Streak:     c.sess.Streak(),
		BestStreak: c.sess.BestStreak(),
		Solution:   SolutionDataFrom(c.current.Solution),
		Explainer:  c.current.Solution.Explainer,
	})
	_ = c.SendMessage(response)
}

func (c *Connection) handleNext() {
	if c.sess == nil {
		c.sendError("not_started", "Send start before next")
		return
	}
	c.dealNext()
}

func (c *Connection) handleEnd() {
	if c.sess == nil {
		c.sendError("not_started", "Send start before end")
		return
	}

	response, _ := NewMessage(MessageTypeSummary, SummaryDataFrom(c.sess.Summarize()))
	_ = c.SendMessage(response)
	c.logger.Info("Session ended", "rounds", c.sess.Rounds(), "xp", c.sess.XP())

	c.sess = nil
	c.gen = nil
	c.current = nil
}

// dealNext generates a spot, starts its answer timer and ships it to the
// client with the solution stripped.
func (c *Connection) dealNext() {
	sp := c.gen.Generate(c.sess.Mode())
	c.current = &sp
	c.round++
	c.answered = false
	c.sess.StartRound()

	response, _ := NewMessage(MessageTypeSpot, SpotDataFrom(sp, c.round))
	_ = c.SendMessage(response)
}

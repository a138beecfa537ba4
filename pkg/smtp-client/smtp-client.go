package smtpclient

import (
	"crypto/tls"
	"errors"
	"log/slog"
	"net/smtp"
	"net/textproto"
	"strconv"
	"sync"
	"time"

	"github.com/knadh/smtppool"
)

// smtpConn pairs a connection pool with the server definition it was built
// from. Servers that fail to connect at startup are skipped, so the pool
// list and the configured server list can diverge; keeping the pair
// together makes reconnects target the right server.
type smtpConn struct {
	pool   *smtppool.Pool
	server SMTPServer
}

type SMTPClients struct {
	servers SMTPServerList

	mu          sync.Mutex
	connections []*smtpConn
	counter     int
}

func NewSMTPClients(config SMTPServerList) (*SMTPClients, error) {
	connections := initConnectionPool(config)
	if len(connections) < 1 {
		return nil, errors.New("no smtp server connection in the pool")
	}
	return &SMTPClients{
		servers:     config,
		connections: connections,
	}, nil
}

// nextConn picks the connection for the next send (round-robin) and
// returns a snapshot of its pool and server.
func (sc *SMTPClients) nextConn() (pool *smtppool.Pool, server SMTPServer, index int) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.counter += 1
	index = sc.counter % len(sc.connections)
	conn := sc.connections[index]
	return conn.pool, conn.server, index
}

func (sc *SMTPClients) buildEmail(
	to []string,
	subject string,
	htmlContent string,
) smtppool.Email {
	return smtppool.Email{
		To:      to,
		From:    sc.servers.From,
		Sender:  sc.servers.Sender,
		ReplyTo: sc.servers.ReplyTo,
		Subject: subject,
		HTML:    []byte(htmlContent),
		Headers: textproto.MIMEHeader{},
	}
}

// SendMail sends one HTML email through the next pool connection
// (round-robin). On a send error the affected pool is reconnected so the
// next attempt gets a fresh connection. Safe for concurrent use.
func (sc *SMTPClients) SendMail(
	to []string,
	subject string,
	htmlContent string,
) error {
	pool, server, index := sc.nextConn()

	err := pool.Send(sc.buildEmail(to, subject, htmlContent))
	if err != nil {
		slog.Error("error when trying to send email", slog.String("error", err.Error()))

		newPool, errReconnect := connectToPool(server)
		if errReconnect != nil {
			slog.Error("cannot reconnect pool", slog.String("error", errReconnect.Error()), slog.String("server", server.Host))
		} else {
			sc.mu.Lock()
			sc.connections[index].pool = newPool
			sc.mu.Unlock()
		}
	}
	return err
}

func initConnectionPool(serverList SMTPServerList) []*smtpConn {
	connections := []*smtpConn{}
	for _, server := range serverList.Servers {
		pool, err := connectToPool(server)
		if err != nil {
			slog.Error("error setting up connection pool", slog.String("error", err.Error()), slog.String("server", server.Address()))
			continue
		}
		connections = append(connections, &smtpConn{
			pool:   pool,
			server: server,
		})
	}
	return connections
}

func connectToPool(server SMTPServer) (*smtppool.Pool, error) {
	auth := smtp.PlainAuth(
		"",
		server.AuthData.Username,
		server.AuthData.Password,
		server.Host,
	)
	if server.AuthData.Username == "" && server.AuthData.Password == "" {
		auth = nil
	}

	port, err := strconv.Atoi(server.Port)
	if err != nil {
		return nil, err
	}

	return smtppool.New(smtppool.Opt{
		Host:            server.Host,
		Port:            port,
		MaxConns:        server.Connections,
		IdleTimeout:     time.Duration(server.SendTimeout) * time.Second,
		PoolWaitTimeout: time.Duration(server.SendTimeout) * time.Second,
		TLSConfig: &tls.Config{
			InsecureSkipVerify: server.InsecureSkipVerify,
			ServerName:         server.Host,
		},
		Auth: auth,
	})
}

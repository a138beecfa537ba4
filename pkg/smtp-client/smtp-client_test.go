package smtpclient

import (
	"sync"
	"testing"
)

func TestNextConn(t *testing.T) {

	t.Run("server stays paired with its connection", func(t *testing.T) {
		sc := &SMTPClients{
			connections: []*smtpConn{
				{server: SMTPServer{Host: "smtp-a.example.com"}},
				{server: SMTPServer{Host: "smtp-b.example.com"}},
			},
		}

		for i := 0; i < 4; i++ {
			_, server, index := sc.nextConn()
			if server.Host != sc.connections[index].server.Host {
				t.Errorf("server %s does not belong to connection %d", server.Host, index)
			}
		}
	})

	t.Run("rotates over all connections", func(t *testing.T) {
		sc := &SMTPClients{
			connections: []*smtpConn{
				{server: SMTPServer{Host: "smtp-a.example.com"}},
				{server: SMTPServer{Host: "smtp-b.example.com"}},
				{server: SMTPServer{Host: "smtp-c.example.com"}},
			},
		}

		seen := map[string]int{}
		for i := 0; i < 6; i++ {
			_, server, _ := sc.nextConn()
			seen[server.Host] += 1
		}
		for host, count := range seen {
			if count != 2 {
				t.Errorf("unexpected pick count for %s: %d", host, count)
			}
		}
	})

	t.Run("concurrent use", func(t *testing.T) {
		sc := &SMTPClients{
			connections: []*smtpConn{
				{server: SMTPServer{Host: "smtp-a.example.com"}},
				{server: SMTPServer{Host: "smtp-b.example.com"}},
			},
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					_, _, index := sc.nextConn()
					if index < 0 || index >= len(sc.connections) {
						t.Errorf("index out of range: %d", index)
						return
					}
				}
			}()
		}
		wg.Wait()
	})
}

func TestBuildEmail(t *testing.T) {
	sc := &SMTPClients{
		servers: SMTPServerList{
			From:    "noreply@example.com",
			Sender:  "sender@example.com",
			ReplyTo: []string{"support@example.com"},
		},
	}

	e := sc.buildEmail([]string{"a@example.com", "b@example.com"}, "Hello", "<p>Hi</p>")

	if len(e.To) != 2 || e.To[0] != "a@example.com" {
		t.Errorf("unexpected recipients: %v", e.To)
	}
	if e.From != "noreply@example.com" || e.Sender != "sender@example.com" {
		t.Errorf("unexpected sender fields: %s / %s", e.From, e.Sender)
	}
	if len(e.ReplyTo) != 1 || e.ReplyTo[0] != "support@example.com" {
		t.Errorf("unexpected reply-to: %v", e.ReplyTo)
	}
	if e.Subject != "Hello" || string(e.HTML) != "<p>Hi</p>" {
		t.Errorf("unexpected content: %s / %s", e.Subject, string(e.HTML))
	}
}

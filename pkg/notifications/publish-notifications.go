package notifications

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
	smtpclient "github.com/Trust-Tai/bioptrics-survey-backend/pkg/smtp-client"
)

var (
	smtpClients *smtpclient.SMTPClients

	// per instance list of collaborator addresses to notify on publish
	collaboratorEmails map[string][]string
)

func Init(serverList smtpclient.SMTPServerList, collaborators map[string][]string) {
	collaboratorEmails = collaborators

	if len(serverList.Servers) < 1 {
		slog.Info("no SMTP servers configured, publish notifications disabled")
		return
	}

	var err error
	smtpClients, err = smtpclient.NewSMTPClients(serverList)
	if err != nil {
		slog.Error("could not init SMTP clients, publish notifications disabled", slog.String("error", err.Error()))
		smtpClients = nil
	}
}

// OnSurveyPublished notifies the instance's collaborators that a survey
// went live. Best effort: failures are logged, never propagated, so a
// notification problem cannot fail the publish call.
func OnSurveyPublished(instanceID string, survey questionTypes.Survey, publishedBy string) {
	if smtpClients == nil {
		return
	}
	recipients := collaboratorEmails[instanceID]
	if len(recipients) < 1 {
		return
	}

	messageID := uuid.NewString()
	subject := fmt.Sprintf("Survey published: %s", survey.Name)
	body := fmt.Sprintf(
		"<p>The survey <b>%s</b> (version %s) was published by %s.</p>",
		survey.Name, survey.VersionID, publishedBy,
	)

	go func() {
		if err := smtpClients.SendMail(recipients, subject, body); err != nil {
			slog.Error("could not send publish notification",
				slog.String("instanceID", instanceID),
				slog.String("surveyID", survey.ID.Hex()),
				slog.String("messageID", messageID),
				slog.String("error", err.Error()))
			return
		}
		slog.Info("publish notification sent",
			slog.String("instanceID", instanceID),
			slog.String("surveyID", survey.ID.Hex()),
			slog.String("messageID", messageID))
	}()
}

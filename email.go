package main

import (
	"errors"
	"fmt"
	"net/textproto"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

const (
	emailSubject = "PDF files from pdfebc"
	emailBody    = "Automatic e-mail sent by pdfebc.\nThe compressed files are attached."
)

const authErrorMessage = `An authentication error has occured!
Status code: %d
Message: %s

This usually happens due to incorrect username and/or password in the configuration file,
so please look it over!`

const unexpectedErrorMessage = `An unexpected error occurred when attempting to send the e-mail.

Error: %#v

Please open an issue about this error at 'https://github.com/slarse/pdfebc-cli/issues'.`

// newEmailJob resolves the SMTP account from the configuration and pairs it
// with the files to attach.
func newEmailJob(attachments []string) EmailJob {
	return EmailJob{
		User:        viper.GetString(keyUser),
		Password:    viper.GetString(keyPassword),
		Receiver:    viper.GetString(keyReceiver),
		SMTPServer:  viper.GetString(keySMTPServer),
		SMTPPort:    viper.GetInt(keySMTPPort),
		Attachments: attachments,
	}
}

// sendStatusMessage is the text printed before a send starts: the resolved
// account details and the files about to be attached.
func sendStatusMessage(job EmailJob) string {
	return fmt.Sprintf(`Sending e-mail ...
From: %s
To: %s
SMTP server: %s
SMTP port: %d
Files:
%s`, job.User, job.Receiver, job.SMTPServer, job.SMTPPort, strings.Join(job.Attachments, "\n"))
}

// sendFilesFn is the send implementation used by the orchestrator, swapped
// out in tests to avoid real SMTP traffic.
var sendFilesFn = sendFiles

// sendFiles sends the job's files as attachments in a single message through
// the preconfigured SMTP account.
func sendFiles(job EmailJob) error {
	m := gomail.NewMessage()
	m.SetHeader("From", job.User)
	m.SetHeader("To", job.Receiver)
	m.SetHeader("Subject", emailSubject)
	m.SetBody("text/plain", emailBody)
	for _, path := range job.Attachments {
		m.Attach(path)
	}

	d := gomail.NewDialer(job.SMTPServer, job.SMTPPort, job.User, job.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending e-mail: %w", err)
	}
	return nil
}

// reportSendError downgrades a send failure to a user-visible message.
// Authentication failures surface as an SMTP reply with its status code and
// text; everything else gets the opaque diagnostic. Neither is fatal.
func reportSendError(err error, cb statusCallback) {
	var smtpErr *textproto.Error
	if errors.As(err, &smtpErr) {
		cb(fmt.Sprintf(authErrorMessage, smtpErr.Code, smtpErr.Msg))
		return
	}
	cb(fmt.Sprintf(unexpectedErrorMessage, err))
}

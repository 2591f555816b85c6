package git

import (
	"context"
	"fmt"
	"strings"
)

// CommitMessage is a commit message
// broken up into a subject and an optional body.
type CommitMessage struct {
	// Subject is the first line of the commit message.
	Subject string

	// Body is the rest of the commit message,
	// excluding the blank line that separates it from the subject.
	Body string
}

func (m CommitMessage) String() string {
	if m.Body == "" {
		return m.Subject
	}
	return m.Subject + "\n\n" + m.Body
}

// CommitSubject reports the subject line of the given commit.
func (r *Repository) CommitSubject(ctx context.Context, commitish string) (string, error) {
	out, err := r.gitCmd(ctx, "log", "-1", "--pretty=format:%s", commitish).
		OutputChomp()
	if err != nil {
		return "", fmt.Errorf("git log: %w", err)
	}
	return out, nil
}

// CommitMessageRange reports the commit messages of commits
// in the range (stop, start], newest first.
func (r *Repository) CommitMessageRange(ctx context.Context, start, stop string) ([]CommitMessage, error) {
	// -z delimits commits with NUL instead of newline,
	// so the output is exactly two null-delimited tokens per commit:
	//
	//	subject1\0body1\0subject2\0body2\0
	cmd := r.gitCmd(ctx, "log", "-z", "--format=%s%x00%b", start, "--not", stop)

	var (
		msgs    []CommitMessage
		subject = true
	)
	for tok, err := range cmd.Scan(scanNullDelimited) {
		if err != nil {
			return nil, fmt.Errorf("git log: %w", err)
		}

		if subject {
			msgs = append(msgs, CommitMessage{
				Subject: strings.TrimSpace(string(tok)),
			})
		} else {
			msgs[len(msgs)-1].Body = strings.TrimSpace(string(tok))
		}
		subject = !subject
	}

	return msgs, nil
}

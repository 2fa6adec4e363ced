package sendgrid

import (
	"context"
	"encoding/base64"

	"golang.org/x/sync/errgroup"

	"github.com/gsarma/mailgate/notification"
)

// translateAttachments converts stored attachments into the provider
// wire format. Reads are issued concurrently since they are
// independent; each result is slotted by index, so the output order
// always matches the input order regardless of read completion order.
// Any read failure aborts the whole translation.
func (a *Adapter) translateAttachments(ctx context.Context, atts []notification.StoredAttachment) ([]Attachment, error) {
	a.log.Debug().Int("count", len(atts)).Msg("inlining attachments")

	out := make([]Attachment, len(atts))
	g, gctx := errgroup.WithContext(ctx)
	for i, att := range atts {
		g.Go(func() error {
			raw, err := att.File.Read(gctx)
			if err != nil {
				return err
			}
			out[i] = Attachment{
				Filename:    att.Filename,
				Content:     base64.StdEncoding.EncodeToString(raw),
				Type:        att.ContentType,
				Disposition: "attachment",
			}
			a.log.Debug().Str("filename", att.Filename).Int("bytes", len(raw)).Msg("attachment read")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

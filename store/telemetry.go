package store

import (
	"context"

	"github.com/Ricky294/perdict/internal/telemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// WithTelemetry returns a [Store] that adds telemetry to s.
func WithTelemetry(
	s Store,
	p trace.TracerProvider,
	m metric.MeterProvider,
	l log.LoggerProvider,
) Store {
	return &instrumentedStore{
		Next: s,
		Telemetry: telemetry.Provider{
			TracerProvider: p,
			MeterProvider:  m,
			LoggerProvider: l,
		},
	}
}

// instrumentedStore is a decorator that adds instrumentation to a [Store].
type instrumentedStore struct {
	Next      Store
	Telemetry telemetry.Provider
}

// Open returns the document with the given name.
func (s *instrumentedStore) Open(ctx context.Context, name string) (Document, error) {
	telem := s.Telemetry.Recorder(
		"github.com/Ricky294/perdict/store",
		telemetry.Type("store", s.Next),
		telemetry.String("document.name", name),
	)

	doc := &instrumentedDocument{
		Telemetry:     telem,
		OpenDocuments: telem.UpDownCounter("open_documents", "{document}", "The number of documents that are currently open."),
		Misses:        telem.Counter("misses", "{operation}", "The number of times a document was loaded but found to be absent or empty."),
		DocumentIO:    telem.Counter("document.io", "By", "The cumulative size of the documents that have been loaded and saved."),
		DocumentSize:  telem.Histogram("document.size", "By", "The sizes of the documents that have been loaded and saved."),
	}

	ctx, span := telem.StartSpan(ctx, "document.open")
	defer span.End()

	next, err := s.Next.Open(ctx, name)
	if err != nil {
		doc.Telemetry.Error(ctx, "document.open.error", err)
		return nil, err
	}

	doc.Next = next

	doc.OpenDocuments(ctx, 1)
	doc.Telemetry.Info(ctx, "document.open.ok", "opened document")

	return doc, nil
}

type instrumentedDocument struct {
	Next      Document
	Telemetry *telemetry.Recorder

	OpenDocuments telemetry.Instrument[int64]
	Misses        telemetry.Instrument[int64]
	DocumentIO    telemetry.Instrument[int64]
	DocumentSize  telemetry.Instrument[int64]
}

func (d *instrumentedDocument) Name() string {
	return d.Next.Name()
}

func (d *instrumentedDocument) Load(ctx context.Context) ([]byte, error) {
	ctx, span := d.Telemetry.StartSpan(ctx, "document.load")
	defer span.End()

	data, err := d.Next.Load(ctx)
	if err != nil {
		d.Telemetry.Error(ctx, "document.load.error", err)
		return nil, err
	}

	size := int64(len(data))

	if size != 0 {
		d.DocumentIO(ctx, size)
		d.DocumentSize(ctx, size)

		span.SetAttributes(telemetry.TraceAttrs(
			telemetry.Bool("document_present", true),
			telemetry.Int("document_size", size),
		)...)

		d.Telemetry.Info(ctx, "document.load.ok", "loaded document")
	} else {
		d.Misses(ctx, 1)

		span.SetAttributes(telemetry.TraceAttrs(
			telemetry.Bool("document_present", false),
		)...)

		d.Telemetry.Info(ctx, "document.load.ok", "document is absent or empty")
	}

	return data, nil
}

func (d *instrumentedDocument) Save(ctx context.Context, data []byte) error {
	size := int64(len(data))

	ctx, span := d.Telemetry.StartSpan(
		ctx,
		"document.save",
		telemetry.Int("document_size", size),
	)
	defer span.End()

	d.DocumentIO(ctx, size)
	d.DocumentSize(ctx, size)

	if err := d.Next.Save(ctx, data); err != nil {
		d.Telemetry.Error(ctx, "document.save.error", err)
		return err
	}

	d.Telemetry.Info(ctx, "document.save.ok", "saved document")

	return nil
}

func (d *instrumentedDocument) Close() error {
	if d.Next == nil {
		// Closing an already-closed resource is not an error, allowing
		// Close() to be called unconditionally by a defer statement.
		return nil
	}

	ctx, span := d.Telemetry.StartSpan(context.Background(), "document.close")
	defer span.End()

	defer func() {
		d.Next = nil
		d.OpenDocuments(ctx, -1)
	}()

	if err := d.Next.Close(); err != nil {
		d.Telemetry.Error(ctx, "document.close.error", err)
		return err
	}

	d.Telemetry.Info(ctx, "document.close.ok", "document closed")

	return nil
}

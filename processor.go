// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/wav"
)

// DefaultConcurrency bounds how many sources one operation loads at a time.
const DefaultConcurrency = 4

// Effect places the sample at Src into a backing track.
type Effect struct {
	Src string
	// Duration in seconds of the effect to keep.
	Duration float64
	// StartTime in seconds into the backing track.
	StartTime float64
}

// Note is one pitch of a note sequence, resolved through the SampleBank.
type Note struct {
	Pitch    int
	Duration float64
}

// Processor loads sources, composes them and renders the result as a
// 16-bit PCM WAV file. It is safe for concurrent use.
type Processor struct {
	loader      Loader
	registry    *audio.Registry
	bank        SampleBank
	actx        *audio.Context
	volume      float64
	compressor  *audio.Compressor
	logger      *slog.Logger
	concurrency int
}

// Option configures a Processor.
type Option func(*Processor)

// WithRegistry replaces DefaultRegistry.
func WithRegistry(r *audio.Registry) Option {
	return func(p *Processor) {
		if r != nil {
			p.registry = r
		}
	}
}

// WithSampleBank sets the bank used by MergeNotes.
func WithSampleBank(b SampleBank) Option {
	return func(p *Processor) {
		if b != nil {
			p.bank = b
		}
	}
}

// WithContext sets the audio context whose sample rate MergeNotes renders at.
func WithContext(c *audio.Context) Option {
	return func(p *Processor) {
		if c != nil {
			p.actx = c
		}
	}
}

// WithVolume sets the gain applied to every result.
func WithVolume(v float64) Option {
	return func(p *Processor) { p.volume = v }
}

// WithCompressor runs c over every result before the gain stage.
func WithCompressor(c *audio.Compressor) Option {
	return func(p *Processor) { p.compressor = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithConcurrency bounds parallel source loads. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// New returns a Processor reading sources through loader.
func New(loader Loader, opts ...Option) *Processor {
	p := &Processor{
		loader:      loader,
		registry:    DefaultRegistry(),
		bank:        NewTemplateBank(DefaultNoteTemplate),
		actx:        audio.DefaultContext(),
		volume:      audio.DefaultVolume,
		logger:      slog.Default(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load decodes ref into a buffer of at least two channels. The decoder is
// picked by the extension of ref.
func (p *Processor) Load(ctx context.Context, ref string) (*audio.Buffer, error) {
	return p.load(ctx, p.logger, ref)
}

func (p *Processor) load(ctx context.Context, log *slog.Logger, ref string) (*audio.Buffer, error) {
	format := formatOf(ref)
	dec, ok := p.registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ref)
	}

	start := time.Now()
	rc, err := p.loader.Open(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}
	defer rc.Close()

	buf, err := audio.DecodeBuffer(dec, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}

	log.Debug("source loaded",
		slog.String("ref", ref),
		slog.String("format", format),
		slog.Int("frames", buf.Len()),
		slog.Int("channels", buf.Channels()),
		slog.Int("sample_rate", buf.SampleRate),
		slog.Duration("elapsed", time.Since(start)),
	)

	return buf, nil
}

// loadAll loads refs in parallel and returns their buffers in the same
// order. A ref listed more than once is loaded once and shared. The first
// failure cancels the loads still running.
func (p *Processor) loadAll(ctx context.Context, log *slog.Logger, refs []string) ([]*audio.Buffer, error) {
	index := make(map[string]int, len(refs))
	unique := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, ok := index[ref]; !ok {
			index[ref] = len(unique)
			unique = append(unique, ref)
		}
	}

	loaded := make([]*audio.Buffer, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, ref := range unique {
		g.Go(func() error {
			b, err := p.load(gctx, log, ref)
			if err != nil {
				return err
			}
			loaded[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*audio.Buffer, len(refs))
	for i, ref := range refs {
		out[i] = loaded[index[ref]]
	}
	return out, nil
}

// operation carries the per call logger and timing.
type operation struct {
	name  string
	log   *slog.Logger
	start time.Time
}

func (p *Processor) begin(name string) operation {
	return operation{
		name:  name,
		log:   p.logger.With(slog.String("op", name), slog.String("op_id", uuid.New().String())),
		start: time.Now(),
	}
}

// finish runs the output stage: compressor, gain and WAV encoding.
func (p *Processor) finish(op operation, buf *audio.Buffer) ([]byte, error) {
	if p.compressor != nil {
		buf = p.compressor.Process(buf)
	}
	audio.ApplyGain(buf, p.volume)

	data, err := wav.EncodeBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.name, err)
	}

	op.log.Info("operation complete",
		slog.Int("frames", buf.Len()),
		slog.Int("channels", buf.Channels()),
		slog.Int("sample_rate", buf.SampleRate),
		slog.Int("bytes", len(data)),
		slog.Duration("elapsed", time.Since(op.start)),
	)

	return data, nil
}

func (p *Processor) fail(op operation, err error) error {
	op.log.Error("operation failed", slog.Any("error", err))
	return fmt.Errorf("%s: %w", op.name, err)
}

// Concat joins refs end to end.
func (p *Processor) Concat(ctx context.Context, refs ...string) ([]byte, error) {
	op := p.begin("concat")

	bufs, err := p.loadAll(ctx, op.log, refs)
	if err != nil {
		return nil, p.fail(op, err)
	}

	out, err := audio.Concat(bufs...)
	if err != nil {
		return nil, p.fail(op, err)
	}
	return p.finish(op, out)
}

// Merge mixes refs on top of each other.
func (p *Processor) Merge(ctx context.Context, refs ...string) ([]byte, error) {
	op := p.begin("merge")

	bufs, err := p.loadAll(ctx, op.log, refs)
	if err != nil {
		return nil, p.fail(op, err)
	}

	out, err := audio.Merge(bufs...)
	if err != nil {
		return nil, p.fail(op, err)
	}
	return p.finish(op, out)
}

// Slice cuts duration seconds from the start of ref and places them at frame
// offset of the result.
func (p *Processor) Slice(ctx context.Context, ref string, offset int, duration float64) ([]byte, error) {
	op := p.begin("slice")

	buf, err := p.load(ctx, op.log, ref)
	if err != nil {
		return nil, p.fail(op, err)
	}

	out, err := audio.Slice(buf, offset, duration)
	if err != nil {
		return nil, p.fail(op, err)
	}
	return p.finish(op, out)
}

// InsertEffects overlays effects onto the backing track.
func (p *Processor) InsertEffects(ctx context.Context, backing string, effects []Effect) ([]byte, error) {
	op := p.begin("insert_effects")

	refs := make([]string, 0, len(effects)+1)
	refs = append(refs, backing)
	for _, e := range effects {
		refs = append(refs, e.Src)
	}

	bufs, err := p.loadAll(ctx, op.log, refs)
	if err != nil {
		return nil, p.fail(op, err)
	}

	placed := make([]audio.Effect, len(effects))
	for i, e := range effects {
		placed[i] = audio.Effect{Buffer: bufs[i+1], Duration: e.Duration, StartTime: e.StartTime}
	}

	out, err := audio.InsertEffects(bufs[0], placed)
	if err != nil {
		return nil, p.fail(op, err)
	}
	return p.finish(op, out)
}

// MergeNotes renders notes one after another at the sample rate of the
// processor's audio context.
func (p *Processor) MergeNotes(ctx context.Context, notes []Note) ([]byte, error) {
	op := p.begin("merge_notes")

	refs := make([]string, len(notes))
	for i, n := range notes {
		ref, err := p.bank.Lookup(n.Pitch)
		if err != nil {
			return nil, p.fail(op, fmt.Errorf("note %d: %w", i, err))
		}
		refs[i] = ref
	}

	bufs, err := p.loadAll(ctx, op.log, refs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrPitchNotFound, err)
		}
		return nil, p.fail(op, err)
	}

	seq := make([]audio.Note, len(notes))
	for i, n := range notes {
		seq[i] = audio.Note{Buffer: bufs[i], Duration: n.Duration}
	}

	out, err := audio.MergeNotes(p.actx.SampleRate, seq)
	if err != nil {
		return nil, p.fail(op, err)
	}
	return p.finish(op, out)
}

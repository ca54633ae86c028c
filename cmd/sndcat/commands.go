// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ik5/sndstream"
	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/stream"
)

type command struct {
	name  string
	nargs int
	flags func(*pflag.FlagSet)
	run   func(a *app, ctx context.Context, flags *pflag.FlagSet) error
}

var commands = []command{
	{name: "info", nargs: 1, flags: infoFlags, run: (*app).info},
	{name: "convert", nargs: 2, flags: formatFlags, run: (*app).convert},
	{name: "fetch", nargs: 2, flags: formatFlags, run: (*app).fetch},
	{name: "put", nargs: 2, flags: formatFlags, run: (*app).put},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func infoFlags(flags *pflag.FlagSet) {
	flags.Bool("remote", false, "Read FILE from the object store")
	flags.String(keyKind, "", "Sample kind")
}

func formatFlags(flags *pflag.FlagSet) {
	flags.String("container", "", "Output container")
	flags.String("subtype", "", "Output encoding")
	flags.String(keyKind, "", "Sample kind")
}

func (a *app) runCommand(ctx context.Context, cmd command, args []string) error {
	flags := pflag.NewFlagSet(cmd.name, pflag.ContinueOnError)
	flags.Usage = func() {}
	cmd.flags(flags)

	if err := flags.Parse(args); err != nil {
		return usageError{err}
	}
	if flags.NArg() != cmd.nargs {
		return usagef("want %d arguments, got %d", cmd.nargs, flags.NArg())
	}
	if err := a.v.BindPFlag(keyKind, flags.Lookup(keyKind)); err != nil {
		return err
	}

	a.logger.Debug("running command", "command", cmd.name, "args", flags.Args())
	return cmd.run(a, ctx, flags)
}

func (a *app) kind() (audio.SampleKind, error) {
	kind, err := audio.ParseSampleKind(a.v.GetString(keyKind))
	if err != nil {
		return 0, usageError{err}
	}
	return kind, nil
}

// outputFormat reads --container and --subtype. Empty flags leave the field
// for DeriveInfo to fill in.
func outputFormat(flags *pflag.FlagSet) (audio.Info, error) {
	var info audio.Info

	if name, _ := flags.GetString("container"); name != "" {
		c, err := audio.ParseContainer(name)
		if err != nil {
			return info, usageError{err}
		}
		info.Container = c
	}
	if name, _ := flags.GetString("subtype"); name != "" {
		st, err := audio.ParseSubtype(name)
		if err != nil {
			return info, usageError{err}
		}
		info.Subtype = st
	}
	return info, nil
}

func (a *app) info(ctx context.Context, flags *pflag.FlagSet) error {
	kind, err := a.kind()
	if err != nil {
		return err
	}

	name := flags.Arg(0)
	var s *stream.Stream
	if remote, _ := flags.GetBool("remote"); remote {
		store, err := a.store(ctx)
		if err != nil {
			return err
		}
		s, err = store.OpenStream(ctx, name, kind, a.streamOptions()...)
		if err != nil {
			return err
		}
	} else {
		s, err = stream.OpenRead(name, kind, a.streamOptions()...)
		if err != nil {
			return err
		}
	}
	defer s.Close()

	return a.printInfo(name, s)
}

func (a *app) printInfo(name string, s *stream.Stream) error {
	info := s.Info()
	row := func(label string, value any) {
		fmt.Fprintf(a.stdout, "%s %v\n", a.colors.label(fmt.Sprintf("%-10s", label)), value)
	}

	row("file", name)
	row("format", info.Format())
	row("rate", fmt.Sprintf("%d Hz", info.SampleRate))
	row("channels", info.Channels)
	row("frames", info.Frames)
	row("duration", s.Duration())
	row("seekable", info.Seekable)
	row("engine", s.Engine().Name())

	for _, kind := range audio.StringKinds {
		v, err := s.String(kind)
		if err != nil {
			return err
		}
		if v != "" {
			row(kind.String(), v)
		}
	}
	return nil
}

func (a *app) convert(_ context.Context, flags *pflag.FlagSet) error {
	kind, err := a.kind()
	if err != nil {
		return err
	}
	to, err := outputFormat(flags)
	if err != nil {
		return err
	}

	in, out := flags.Arg(0), flags.Arg(1)
	frames, err := sndstream.ConvertFile(out, in, to, kind, a.streamOptions()...)
	if err != nil {
		return err
	}
	a.report(frames, out)
	return nil
}

func (a *app) fetch(ctx context.Context, flags *pflag.FlagSet) error {
	kind, err := a.kind()
	if err != nil {
		return err
	}
	to, err := outputFormat(flags)
	if err != nil {
		return err
	}
	store, err := a.store(ctx)
	if err != nil {
		return err
	}

	key, out := flags.Arg(0), flags.Arg(1)
	src, err := store.OpenStream(ctx, key, kind, a.streamOptions()...)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := sndstream.DeriveInfo(out, src.Info(), to)
	if err != nil {
		return err
	}
	dst, err := stream.OpenWrite(out, info, kind, a.streamOptions()...)
	if err != nil {
		return err
	}
	return a.transfer(dst, src, out)
}

func (a *app) put(ctx context.Context, flags *pflag.FlagSet) error {
	kind, err := a.kind()
	if err != nil {
		return err
	}
	to, err := outputFormat(flags)
	if err != nil {
		return err
	}
	store, err := a.store(ctx)
	if err != nil {
		return err
	}

	in, key := flags.Arg(0), flags.Arg(1)
	src, err := stream.OpenRead(in, kind, a.streamOptions()...)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := sndstream.DeriveInfo(key, src.Info(), to)
	if err != nil {
		return err
	}
	dst, err := store.CreateStream(ctx, key, info, kind, a.streamOptions()...)
	if err != nil {
		return err
	}
	return a.transfer(dst, src, key)
}

// transfer copies src into dst and closes dst.
func (a *app) transfer(dst, src *stream.Stream, name string) error {
	if _, err := sndstream.CopyStrings(dst, src); err != nil {
		dst.Close()
		return err
	}

	frames, err := sndstream.Copy(dst, src)
	if cerr := dst.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		return err
	}
	a.report(frames, name)
	return nil
}

func (a *app) report(frames int64, name string) {
	fmt.Fprintf(a.stdout, "%s %d frames to %s\n", a.colors.good("wrote"), frames, name)
}

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/fzft/go-unordered-set/container"
)

var (
	SetCliVersion = "0.1.0"

	SetCliHisFileEnv     = "GOSETCLI_HISTFILE"
	SetCliHisFileDefault = ".gosetcli_history"
)

// SetCli is an interactive shell over a single in-memory string set. Every
// public set operation is reachable as a command, which makes it a handy
// way to poke at bucket placement and rehash behavior.
type SetCli struct {
	set  *container.HashSet[string]
	line *liner.State

	interactive bool
	historyFile string
}

func NewSetCli() *SetCli {
	return &SetCli{
		set: container.NewHashSet[string](container.HashString, container.EqualOf[string]),
	}
}

// Version renders the release string, appending git commit and working
// tree status when the build embedded them.
func (cli *SetCli) Version(gitSHA1, gitDirty string) string {
	version := fmt.Sprintf("gosetcli %s", SetCliVersion)
	if sha1Int, err := strconv.ParseInt(gitSHA1, 16, 64); err == nil && sha1Int != 0 {
		version = fmt.Sprintf("%s (git:%s", version, gitSHA1)
		if dirtyInt, err := strconv.ParseInt(gitDirty, 10, 64); err == nil && dirtyInt != 0 {
			version = fmt.Sprintf("%s-dirty", version)
		}
		version = fmt.Sprintf("%s)", version)
	}
	return version
}

func (cli *SetCli) Run(gitSHA1, gitDirty string) error {
	cli.line = liner.NewLiner()
	defer cli.line.Close()
	cli.line.SetCtrlCAborts(true)

	cli.interactive = isatty.IsTerminal(os.Stdin.Fd())
	if cli.interactive {
		cli.historyFile = getDotfilePath(SetCliHisFileEnv, SetCliHisFileDefault)
		if cli.historyFile != "" {
			if f, err := os.Open(cli.historyFile); err == nil {
				cli.line.ReadHistory(f)
				f.Close()
			}
		}
		fmt.Printf("%s, type 'help' for commands\n", cli.Version(gitSHA1, gitDirty))
	}

	return cli.repl()
}

func (cli *SetCli) repl() error {
	for {
		line, err := cli.line.Prompt(cli.prompt())
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			// io.EOF ends the session
			cli.saveHistory()
			return nil
		}

		argv := splitArgs(line)
		if len(argv) == 0 {
			continue
		}
		if cli.interactive {
			cli.line.AppendHistory(line)
		}

		if strings.EqualFold(argv[0], "quit") || strings.EqualFold(argv[0], "exit") {
			cli.saveHistory()
			return nil
		}
		if err := cli.dispatch(argv); err != nil {
			fmt.Printf("(error) %v\n", err)
		}
	}
}

func (cli *SetCli) prompt() string {
	return fmt.Sprintf("set[%d/%d]> ", cli.set.Len(), cli.set.BucketCount())
}

func (cli *SetCli) saveHistory() {
	if !cli.interactive || cli.historyFile == "" {
		return
	}
	if f, err := os.Create(cli.historyFile); err == nil {
		cli.line.WriteHistory(f)
		f.Close()
	}
}

func (cli *SetCli) dispatch(argv []string) error {
	cmd, args := strings.ToLower(argv[0]), argv[1:]
	switch cmd {
	case "help":
		printHelp()
	case "add":
		if len(args) == 0 {
			return fmt.Errorf("add needs at least one value")
		}
		for _, v := range args {
			if _, inserted := cli.set.Insert(v); inserted {
				fmt.Printf("added %q\n", v)
			} else {
				fmt.Printf("%q already present\n", v)
			}
		}
	case "del":
		if len(args) != 1 {
			return fmt.Errorf("usage: del <value>")
		}
		before := cli.set.Len()
		cli.set.Erase(args[0])
		if cli.set.Len() < before {
			fmt.Printf("removed %q\n", args[0])
		} else {
			fmt.Printf("%q not found\n", args[0])
		}
	case "has":
		if len(args) != 1 {
			return fmt.Errorf("usage: has <value>")
		}
		fmt.Println(cli.set.Find(args[0]).Valid())
	case "members", "scan":
		i := 0
		for it := cli.set.Begin(); it.Valid(); it = it.Next() {
			v, err := it.Value()
			if err != nil {
				return err
			}
			fmt.Printf("%d) %q\n", i+1, v)
			i++
		}
		if i == 0 {
			fmt.Println("(empty set)")
		}
	case "len":
		fmt.Println(cli.set.Len())
	case "buckets":
		fmt.Println(cli.set.BucketCount())
	case "bucketof":
		if len(args) != 1 {
			return fmt.Errorf("usage: bucketof <value>")
		}
		fmt.Println(cli.set.Bucket(args[0]))
	case "bucket":
		if len(args) != 1 {
			return fmt.Errorf("usage: bucket <index>")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil || i < 0 || i >= cli.set.BucketCount() {
			return fmt.Errorf("invalid bucket index %q", args[0])
		}
		fmt.Printf("bucket %d (%d elements):\n", i, cli.set.BucketSize(i))
		for it := cli.set.BucketBegin(i); it.Valid(); it = it.Next() {
			v, err := it.Value()
			if err != nil {
				return err
			}
			fmt.Printf("  %q\n", v)
		}
	case "lf":
		fmt.Printf("load factor %.3f (max %.3f)\n", cli.set.LoadFactor(), cli.set.MaxLoadFactor())
	case "maxlf":
		if len(args) != 1 {
			return fmt.Errorf("usage: maxlf <factor>")
		}
		m, err := strconv.ParseFloat(args[0], 64)
		if err != nil || m <= 0 {
			return fmt.Errorf("invalid load factor %q", args[0])
		}
		cli.set.SetMaxLoadFactor(m)
	case "rehash":
		if len(args) != 1 {
			return fmt.Errorf("usage: rehash <buckets>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid bucket count %q", args[0])
		}
		cli.set.Rehash(n)
		fmt.Printf("bucket count now %d\n", cli.set.BucketCount())
	case "reserve":
		if len(args) != 1 {
			return fmt.Errorf("usage: reserve <elements>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid element count %q", args[0])
		}
		cli.set.Reserve(n)
		fmt.Printf("bucket count now %d\n", cli.set.BucketCount())
	case "clear":
		cli.set.Clear()
		fmt.Println("ok")
	case "memory":
		fmt.Printf("%d bytes in live nodes\n", container.UsedMemory())
	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
	return nil
}

func splitArgs(line string) []string {
	return strings.Fields(line)
}

func printHelp() {
	fmt.Print(`commands:
  add <v> [v ...]   insert values
  del <v>           erase a value
  has <v>           membership test
  members           walk the whole set
  bucket <i>        walk one bucket
  bucketof <v>      bucket index a value maps to
  buckets           bucket count
  len               element count
  lf                load factor / max load factor
  maxlf <f>         set max load factor
  rehash <n>        grow the bucket table
  reserve <n>       grow for n elements
  memory            estimated bytes held by nodes
  clear             remove every element
  quit | exit       leave
`)
}

func getDotfilePath(envOverride, dotFilename string) string {
	var dotPath string

	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		dotPath = path
	} else {
		home := os.Getenv("HOME")
		if home != "" {
			dotPath = fmt.Sprintf("%s/%s", home, dotFilename)
		}
	}
	return dotPath
}

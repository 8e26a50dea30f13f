package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	s := a.userName
	if a.suites != nil {
		if active := a.suites.ActiveItem(); active != nil {
			s = fmt.Sprintf("%s / %s", s, active.Name)
		}
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to qaboard CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}

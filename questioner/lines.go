package questioner

import "fmt"

// Lines collects multiple lines until the terminator line is entered
// (empty line by default). Collection is an explicit accumulating loop,
// not recursion, so long sessions cannot grow the call stack.
func (q *Questioner) Lines(cfg LinesConfig) ([]string, error) {
	sess, err := q.surf.Acquire()
	if err != nil {
		return nil, err
	}
	defer sess.Release()

	r := q.renderer(sess)
	if cfg.Message != "" {
		r.Prompt(cfg.Message)
	}
	var out []string
	for {
		line, err := sess.ReadLine()
		if err != nil {
			if len(out) > 0 {
				return out, nil
			}
			return nil, fmt.Errorf("read line: %w", err)
		}
		if line == cfg.Terminator {
			return out, nil
		}
		out = append(out, line)
	}
}

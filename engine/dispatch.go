package engine

type handler func(*Engine) error

// dispatch maps an instruction byte to its handler. A nil entry is a no-op.
var dispatch = [256]handler{
	'<': (*Engine).moveLeft,
	'>': (*Engine).moveRight,
	'+': (*Engine).increment,
	'-': (*Engine).decrement,
	',': (*Engine).read,
	'.': (*Engine).write,
	'[': (*Engine).loopEnter,
	']': (*Engine).loopBack,
}

func (e *Engine) moveLeft() error {
	e.tape.MoveLeft()
	return nil
}

func (e *Engine) moveRight() error {
	e.tape.MoveRight()
	return nil
}

func (e *Engine) increment() error {
	e.tape.Increment()
	return nil
}

func (e *Engine) decrement() error {
	e.tape.Decrement()
	return nil
}

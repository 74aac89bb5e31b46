package model

// EstimatorState はモデルの初期化状態を表す
type EstimatorState int

const (
	// NotFitted は重みが初期化されておらず推論に使えない状態
	NotFitted EstimatorState = iota
	// Fitted は重みが初期化され符号化・復号が可能な状態
	Fitted
)

// BaseEstimator は生成モデルの基底となる構造体。
// ゼロ値はNotFittedであり、コンストラクタが重みを初期化した後に
// SetFittedを呼ぶことで推論可能になる。コンストラクタを通さずに
// 生成されたモデルはNotFittedのままとなり、各操作はNotFittedErrorを返す。
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted はモデルが推論可能かどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted はモデルを推論可能な状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset はモデルを未初期化状態に戻す
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}

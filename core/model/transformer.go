package model

import "gonum.org/v1/gonum/mat"

// Transformer は前処理によるデータ変換のインターフェース。
// 画素値のスケーリングなど、モデルへ入力する前のバッチ変換を表す。
type Transformer interface {
	// Fit は変換に必要な統計量をデータから学習する
	Fit(X mat.Matrix) error

	// Transform は学習済みの統計量でデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// InverseTransformer は変換を逆向きに適用できるTransformerのインターフェース。
// 再構成されたバッチを元のスケールへ戻すために用いる。
type InverseTransformer interface {
	Transformer

	// InverseTransform は変換後のデータを元のスケールへ戻す
	InverseTransform(X mat.Matrix) (mat.Matrix, error)
}
